// Package models lists the chat-capable models available to the configured
// API key, so users can pick a value for --model without leaving the tool.
package models
