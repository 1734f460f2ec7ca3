package audit

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseOrigin builds an Origin from request metadata. Unparseable user
// agents degrade to "unknown" fields rather than failing.
func ParseOrigin(ip, userAgentString string) Origin {
	origin := Origin{
		IP:        ip,
		UserAgent: userAgentString,
		Browser:   "unknown",
		OS:        "unknown",
		Device:    "desktop",
	}
	if userAgentString == "" {
		return origin
	}

	ua := useragent.New(userAgentString)
	if browser, _ := ua.Browser(); browser != "" {
		origin.Browser = strings.ToLower(strings.TrimSpace(browser))
	}
	if os := ua.OS(); os != "" {
		origin.OS = strings.ToLower(strings.TrimSpace(os))
	}
	if ua.Mobile() {
		origin.Device = "mobile"
	} else if ua.Bot() {
		origin.Device = "bot"
	}
	return origin
}
