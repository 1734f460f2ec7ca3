package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "skillpass/pkg/domain"
)

// Recorder captures view and share events against credentials. Recording is
// best-effort: resolution and sharing never fail because an audit row could
// not be written. It uses the storage layer for persistence so tests can swap
// sinks easily.
type Recorder struct {
	store   Store
	events  chan Event
	wg      sync.WaitGroup
	logger  *slog.Logger
	onDrop  func()
	async   bool
	nowFunc func() time.Time
}

// RecorderOption configures the Recorder.
type RecorderOption func(*Recorder)

// WithAsyncBuffer enables async processing with the specified buffer size.
// Events are queued and persisted in a background goroutine.
func WithAsyncBuffer(size int) RecorderOption {
	return func(r *Recorder) {
		if size > 0 {
			r.events = make(chan Event, size)
			r.async = true
		}
	}
}

// WithRecorderLogger sets a logger for async error reporting.
func WithRecorderLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithDropHook registers a callback invoked whenever a full buffer forces an
// event to be dropped.
func WithDropHook(fn func()) RecorderOption {
	return func(r *Recorder) {
		r.onDrop = fn
	}
}

func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{store: store, nowFunc: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.async {
		r.wg.Add(1)
		go r.processEvents()
	}
	return r
}

// processEvents runs in a goroutine and persists events from the channel.
func (r *Recorder) processEvents() {
	defer r.wg.Done()
	for event := range r.events {
		if err := r.store.Append(context.Background(), event); err != nil {
			if r.logger != nil {
				r.logger.Error("failed to persist audit event",
					"error", err,
					"kind", event.Kind,
					"credential_id", event.CredentialID,
				)
			}
		}
	}
}

// Close shuts down the async recorder and waits for pending events to drain.
func (r *Recorder) Close() {
	if r.async && r.events != nil {
		close(r.events)
		r.wg.Wait()
	}
}

// RecordView captures an anonymous view of a credential's public page.
func (r *Recorder) RecordView(ctx context.Context, credentialID id.CredentialID, origin Origin) error {
	return r.emit(ctx, Event{
		CredentialID: credentialID,
		Kind:         KindView,
		Origin:       origin,
	})
}

// RecordShare captures a share of a credential to an external platform.
func (r *Recorder) RecordShare(ctx context.Context, credentialID id.CredentialID, actorID id.UserID, platform string) error {
	return r.emit(ctx, Event{
		CredentialID: credentialID,
		Kind:         KindShare,
		Platform:     platform,
		ActorID:      actorID,
	})
}

func (r *Recorder) emit(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = r.nowFunc()
	}
	if r.async {
		// Non-blocking send; drop event if buffer is full to avoid blocking hot path
		select {
		case r.events <- event:
			return nil
		default:
			if r.logger != nil {
				r.logger.Warn("audit buffer full, event dropped",
					"kind", event.Kind,
					"credential_id", event.CredentialID,
				)
			}
			if r.onDrop != nil {
				r.onDrop()
			}
			return nil
		}
	}
	return r.store.Append(ctx, event)
}

// Views returns how many times the credential's public page has been viewed.
func (r *Recorder) Views(ctx context.Context, credentialID id.CredentialID) (int, error) {
	return r.store.CountByCredential(ctx, credentialID, KindView)
}

// Shares returns how many times the credential has been shared.
func (r *Recorder) Shares(ctx context.Context, credentialID id.CredentialID) (int, error) {
	return r.store.CountByCredential(ctx, credentialID, KindShare)
}
