package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docbabel/translate/internal/cli"
	"github.com/docbabel/translate/internal/exclude"
	"github.com/docbabel/translate/internal/models"
	"github.com/docbabel/translate/internal/processor"
	"github.com/docbabel/translate/internal/translation"
)

// defaultExcludeFile is picked up automatically when present
const defaultExcludeFile = ".translate-ignore"

func main() {
	// Load .env for local runs; CI sets real environment variables
	_ = godotenv.Load()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cfg := cli.Resolve(cmd, flags)

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cfg.APIKey, cfg.BaseURL)
		return lister.ListChatModels()
	}

	if len(args) == 0 {
		return fmt.Errorf("no input files given (see --help)")
	}

	excludes, err := loadExcludes(flags)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var translator *translation.Translator
	if !flags.DryRun {
		provider, err := translation.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}
		translator = translation.NewTranslator(provider)
	}

	proc := processor.NewProcessor(flags, translator, excludes)
	return proc.Run(ctx, args)
}

func loadExcludes(flags *cli.Flags) (*exclude.List, error) {
	if flags.ExcludeFile != "" {
		return exclude.Load(flags.ExcludeFile)
	}
	if _, err := os.Stat(defaultExcludeFile); err == nil {
		return exclude.Load(defaultExcludeFile)
	}
	return exclude.Empty(), nil
}
