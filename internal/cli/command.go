package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docbabel/translate/internal"
	"github.com/docbabel/translate/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translate [file...]",
		Short: "Bilingual QMD documentation translator",
		Long: `translate converts QMD documentation between English and Chinese using an
LLM completion API. Code fences, URLs and file paths are preserved verbatim,
and frontmatter is translated for whitelisted keys only.

The filename convention determines the direction: name.qmd is English and is
translated to name.zh.qmd, and vice versa.

Examples:
  translate docs/intro.qmd                  # English -> Chinese
  translate docs/intro.zh.qmd               # Chinese -> English
  translate --check-spelling docs/*.qmd     # Also report spelling issues
  translate --list-models                   # Show models for the API key`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.translate.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", "", "Target language (en or zh, default derived from filename)")
	cmd.Flags().StringVar(&flags.ExcludeFile, "exclude-file", "", "Glob exclusion list, one pattern per line (default .translate-ignore if present)")
	cmd.Flags().BoolVar(&flags.CheckSpelling, "check-spelling", false, "Report spelling issues for translatable text")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models available for the current API key")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Segment files and report what would be translated without writing output")

	// API flags
	cmd.Flags().StringVar(&flags.Model, "model", flags.Model, "Completion model (gemini* names use the Gemini API)")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "API key (overrides AI_MODEL_API_KEY and OPENAI_API_KEY)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "OpenAI-compatible API base URL")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("api.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("api.base_url", cmd.Flags().Lookup("base-url"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".translate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".translate")
	}

	// Environment variables
	viper.SetEnvPrefix("TRANSLATE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Resolve builds the API configuration. Precedence: explicit CLI flags, then
// AI_MODEL_* environment variables, then the legacy OPENAI_API_KEY, then the
// viper config file, then built-in defaults.
func Resolve(cmd *cobra.Command, flags *Flags) translation.Config {
	cfg := translation.Config{
		Model:   flags.Model,
		APIKey:  flags.APIKey,
		BaseURL: flags.BaseURL,
	}

	if !cmd.Flags().Changed("model") {
		if env := os.Getenv("AI_MODEL_NAME"); env != "" {
			cfg.Model = env
		} else if v := viper.GetString("api.model"); v != "" {
			cfg.Model = v
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = GetAPIKey()
	}

	if cfg.BaseURL == "" {
		if env := os.Getenv("AI_MODEL_BASE_URL"); env != "" {
			cfg.BaseURL = env
		} else {
			cfg.BaseURL = viper.GetString("api.base_url")
		}
	}

	return cfg
}

// GetAPIKey retrieves the API key from environment or config. The
// AI_MODEL_API_KEY variable wins over the legacy OPENAI_API_KEY.
func GetAPIKey() string {
	if key := os.Getenv("AI_MODEL_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("api.key")
}
