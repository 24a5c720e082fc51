// Package cli provides command-line interface setup and configuration
// for the translate tool. It handles flag parsing, command creation, and
// configuration resolution using cobra and viper, including the AI_MODEL_*
// environment variables and the legacy OPENAI_API_KEY fallback.
package cli
