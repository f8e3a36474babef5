package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

var _ slog.Handler = (*SentryHandler)(nil)

// A SentryHandler passes every record on to the slog.Handler it wraps
// and ships records at or above Error to Sentry.
//
// An error-valued attribute is sent as an exception;
// without one, the record's message is sent.
// Other attributes become tags.
type SentryHandler struct {
	slog.Handler

	hub   *sentry.Hub
	attrs []slog.Attr
}

// NewSentryHandler constructs a *SentryHandler wrapping next
// with a Sentry client configured by opts.
func NewSentryHandler(next slog.Handler, opts sentry.ClientOptions) (*SentryHandler, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("unable to init Sentry: %w", err)
	}

	return &SentryHandler{Handler: next, hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Flush waits up to timeout for queued events to be delivered.
func (h *SentryHandler) Flush(timeout time.Duration) bool { return h.hub.Flush(timeout) }

func (h *SentryHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.send(r)
	}

	return h.Handler.Handle(ctx, r)
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	all = append(all, h.attrs...)
	all = append(all, attrs...)
	return &SentryHandler{Handler: h.Handler.WithAttrs(attrs), hub: h.hub, attrs: all}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	return &SentryHandler{Handler: h.Handler.WithGroup(name), hub: h.hub, attrs: h.attrs}
}

func (h *SentryHandler) send(r slog.Record) {
	var cause error
	tags := make(map[string]string, len(h.attrs)+r.NumAttrs())
	collect := func(a slog.Attr) bool {
		if err, ok := a.Value.Any().(error); ok && cause == nil {
			cause = err
			return true
		}

		tags[a.Key] = a.Value.String()
		return true
	}

	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(r.Level))
		scope.SetTags(tags)
		if cause == nil {
			h.hub.CaptureMessage(r.Message)
			return
		}

		scope.SetTag("message", r.Message)
		h.hub.CaptureException(cause)
	})
}

func sentryLevel(lvl slog.Level) sentry.Level {
	if lvl > slog.LevelError {
		return sentry.LevelFatal
	}

	return sentry.LevelError
}
