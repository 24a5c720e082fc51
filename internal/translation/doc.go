// Package translation provides English/Chinese document translation through
// LLM completion APIs. It abstracts OpenAI-compatible and Gemini backends
// behind a Provider interface and wraps every call with bounded retry and a
// circuit breaker so that a flaky API surfaces as a single TranslationError.
package translation
