package testutil

import (
	"context"
	"fmt"
)

// EchoProvider is a stub translation provider that returns the user text
// unchanged. Running a document through it must reproduce the input
// byte-for-byte.
type EchoProvider struct {
	Calls []string
}

// Complete echoes the user text
func (p *EchoProvider) Complete(ctx context.Context, system, user string) (string, error) {
	p.Calls = append(p.Calls, user)
	return user, nil
}

// Name returns the provider name
func (p *EchoProvider) Name() string {
	return "echo"
}

// ScriptedProvider returns canned responses keyed by user text, falling back
// to echoing unknown inputs
type ScriptedProvider struct {
	Responses map[string]string
	Calls     []string
}

// Complete looks up the canned response for the user text
func (p *ScriptedProvider) Complete(ctx context.Context, system, user string) (string, error) {
	p.Calls = append(p.Calls, user)
	if resp, ok := p.Responses[user]; ok {
		return resp, nil
	}
	return user, nil
}

// Name returns the provider name
func (p *ScriptedProvider) Name() string {
	return "scripted"
}

// FailingProvider fails the first FailCount calls, then echoes. With a
// FailCount larger than the retry budget every translation fails.
type FailingProvider struct {
	FailCount int
	Calls     int
}

// Complete fails until FailCount calls have been made
func (p *FailingProvider) Complete(ctx context.Context, system, user string) (string, error) {
	p.Calls++
	if p.Calls <= p.FailCount {
		return "", fmt.Errorf("simulated API failure %d", p.Calls)
	}
	return user, nil
}

// Name returns the provider name
func (p *FailingProvider) Name() string {
	return "failing"
}
