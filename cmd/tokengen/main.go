// Package main provides a CLI tool for generating test bearer tokens for the
// skillpass API. These tokens use the dev signing key and will NOT work in
// production.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"skillpass/internal/platform/token"
	id "skillpass/pkg/domain"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultTokenTTL = 24 * time.Hour
)

type tokenOutput struct {
	Token     string            `json:"token"`
	ExpiresIn string            `json:"expires_in"`
	Claims    map[string]any    `json:"claims"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	userID := flag.String("user-id", "", "User ID (UUID). Generated if empty.")
	role := flag.String("role", "issuer", "Role: learner, issuer, employer, or admin")
	ttl := flag.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	signingKey := flag.String("key", devSigningKey, "JWT signing key")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	parsedRole, err := id.ParseRole(*role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid role %q: must be learner, issuer, employer, or admin\n", *role)
		os.Exit(1)
	}

	uid := parseOrGenerateUserID(*userID)

	svc := token.NewService(*signingKey, *ttl)
	signed, err := svc.Generate(uid, parsedRole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		output := tokenOutput{
			Token:     signed,
			ExpiresIn: ttl.String(),
			Claims: map[string]any{
				"user_id": uid.String(),
				"role":    parsedRole.String(),
			},
			Usage: map[string]string{
				"header": "Authorization: Bearer <token>",
			},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Bearer Token (JWT)")
	fmt.Println("==================")
	fmt.Printf("User ID:    %s\n", uid)
	fmt.Printf("Role:       %s\n", parsedRole)
	fmt.Printf("Expires In: %s\n", ttl)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(signed)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/api/v1/...")
}

func parseOrGenerateUserID(input string) id.UserID {
	if input == "" {
		return id.NewUserID()
	}
	parsed, err := id.ParseUserID(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid user-id UUID: %s\n", input)
		os.Exit(1)
	}
	return parsed
}
