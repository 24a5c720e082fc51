package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/docbabel/translate/internal/document"
)

const translateInstruction = "You are a technical documentation translator. " +
	"Translate the user's Markdown text from %s to %s. " +
	"Preserve the Markdown structure exactly: keep heading levels, list markers, " +
	"emphasis, tables and inline code spans as they are. " +
	"Do not translate code, URLs, file paths, or anything inside backticks. " +
	"Respond with the translated text only, no commentary."

const spellingInstruction = "You are a proofreader for technical documentation written in %s. " +
	"Report spelling mistakes in the user's text, one finding per line as 'wrong -> correct'. " +
	"Ignore code, URLs, file paths and proper nouns. " +
	"If there are no mistakes, respond with exactly OK."

// Option configures a Translator
type Option func(*Translator)

// WithRetry overrides the retry budget and backoff base delay
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(t *Translator) {
		t.maxRetries = maxRetries
		t.baseDelay = baseDelay
	}
}

// Translator translates document segments through a Provider, retrying
// transient API failures with exponential backoff behind a circuit breaker
type Translator struct {
	provider   Provider
	breaker    *gobreaker.CircuitBreaker
	maxRetries int
	baseDelay  time.Duration
}

// NewTranslator creates a translator around the given provider
func NewTranslator(provider Provider, opts ...Option) *Translator {
	t := &Translator{
		provider:   provider,
		maxRetries: 3,
		baseDelay:  time.Second,
	}
	t.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "translation-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TranslateSegment returns the translated replacement text for one segment.
// Non-translatable segments come back unchanged. Frontmatter is rewritten
// key by key so only whitelisted values reach the API.
func (t *Translator) TranslateSegment(ctx context.Context, seg document.Segment, source, target document.Lang) (string, error) {
	switch seg.Kind {
	case document.KindFrontmatter:
		return document.RewriteFrontmatter(seg.Raw, func(value string) (string, error) {
			return t.TranslateText(ctx, value, source, target)
		})
	case document.KindProse:
		return t.TranslateText(ctx, seg.Raw, source, target)
	default:
		return seg.Raw, nil
	}
}

// TranslateText translates a span of prose, preserving its leading and
// trailing whitespace so segment boundaries stay byte-stable
func (t *Translator) TranslateText(ctx context.Context, text string, source, target document.Lang) (string, error) {
	core := strings.TrimSpace(text)
	if core == "" {
		return text, nil
	}
	start := strings.Index(text, core)
	prefix := text[:start]
	suffix := text[start+len(core):]

	system := fmt.Sprintf(translateInstruction, source.Name(), target.Name())
	translated, err := t.complete(ctx, system, core)
	if err != nil {
		return "", err
	}

	return prefix + strings.TrimSpace(translated) + suffix, nil
}

// CheckSpelling runs a proofread pass over text and returns the findings.
// An empty result means nothing was flagged.
func (t *Translator) CheckSpelling(ctx context.Context, text string, lang document.Lang) (string, error) {
	core := strings.TrimSpace(text)
	if core == "" {
		return "", nil
	}

	system := fmt.Sprintf(spellingInstruction, lang.Name())
	report, err := t.complete(ctx, system, core)
	if err != nil {
		return "", err
	}

	report = strings.TrimSpace(report)
	if report == "OK" {
		return "", nil
	}
	return report, nil
}

// complete calls the provider through the circuit breaker, retrying failed
// attempts with exponential backoff before giving up
func (t *Translator) complete(ctx context.Context, system, user string) (string, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			delay := t.baseDelay << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		attempts++
		result, err := t.breaker.Execute(func() (interface{}, error) {
			return t.provider.Complete(ctx, system, user)
		})
		if err == nil {
			return result.(string), nil
		}
		lastErr = err

		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			break
		}
	}

	return "", &TranslationError{
		Provider: t.provider.Name(),
		Attempts: attempts,
		Err:      lastErr,
	}
}
