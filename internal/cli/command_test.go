package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "translate [file...]" {
		t.Errorf("Expected Use to be 'translate [file...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "QMD documentation translator") {
		t.Errorf("Expected Short description to mention the QMD translator")
	}

	flagTests := []string{
		"config",
		"target-lang",
		"exclude-file",
		"check-spelling",
		"list-models",
		"dry-run",
		"model",
		"api-key",
		"base-url",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestGetAPIKey_Precedence(t *testing.T) {
	t.Setenv("AI_MODEL_API_KEY", "new-style-key")
	t.Setenv("OPENAI_API_KEY", "legacy-key")

	if key := GetAPIKey(); key != "new-style-key" {
		t.Errorf("Expected AI_MODEL_API_KEY to win, got %q", key)
	}
}

func TestGetAPIKey_LegacyFallback(t *testing.T) {
	t.Setenv("AI_MODEL_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "legacy-key")

	if key := GetAPIKey(); key != "legacy-key" {
		t.Errorf("Expected legacy OPENAI_API_KEY fallback, got %q", key)
	}
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("AI_MODEL_NAME", "env-model")
	t.Setenv("AI_MODEL_API_KEY", "env-key")
	t.Setenv("AI_MODEL_BASE_URL", "https://env.example.com/v1")

	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	if err := cmd.Flags().Set("model", "flag-model"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	flags.APIKey = "flag-key"

	cfg := Resolve(cmd, flags)

	if cfg.Model != "flag-model" {
		t.Errorf("Expected flag model to win, got %q", cfg.Model)
	}
	if cfg.APIKey != "flag-key" {
		t.Errorf("Expected flag API key to win, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://env.example.com/v1" {
		t.Errorf("Expected env base URL, got %q", cfg.BaseURL)
	}
}

func TestResolve_EnvironmentFallback(t *testing.T) {
	t.Setenv("AI_MODEL_NAME", "env-model")
	t.Setenv("AI_MODEL_API_KEY", "env-key")
	t.Setenv("OPENAI_API_KEY", "legacy-key")

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cfg := Resolve(cmd, flags)

	if cfg.Model != "env-model" {
		t.Errorf("Expected AI_MODEL_NAME to override the default, got %q", cfg.Model)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("Expected AI_MODEL_API_KEY, got %q", cfg.APIKey)
	}
}

func TestResolve_ConfigFileFallback(t *testing.T) {
	t.Setenv("AI_MODEL_NAME", "")
	t.Setenv("AI_MODEL_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	viper.Set("api.model", "config-model")
	viper.Set("api.base_url", "https://config.example.com/v1")
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cfg := Resolve(cmd, flags)

	if cfg.Model != "config-model" {
		t.Errorf("Expected config file model, got %q", cfg.Model)
	}
	if cfg.BaseURL != "https://config.example.com/v1" {
		t.Errorf("Expected config file base URL, got %q", cfg.BaseURL)
	}
}

func TestResolve_Defaults(t *testing.T) {
	t.Setenv("AI_MODEL_NAME", "")
	t.Setenv("AI_MODEL_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cfg := Resolve(cmd, flags)

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Expected built-in default model, got %q", cfg.Model)
	}
}
