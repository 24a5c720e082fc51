package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docbabel/translate/internal/cli"
	"github.com/docbabel/translate/internal/document"
	"github.com/docbabel/translate/internal/exclude"
	"github.com/docbabel/translate/internal/translation"
)

// Processor handles the main file translation logic
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator
	excludes   *exclude.List
}

// NewProcessor creates a new file processor
func NewProcessor(flags *cli.Flags, translator *translation.Translator, excludes *exclude.List) *Processor {
	if excludes == nil {
		excludes = exclude.Empty()
	}
	return &Processor{
		flags:      flags,
		translator: translator,
		excludes:   excludes,
	}
}

// Run processes all files in order. Failed files are reported and skipped;
// the returned error is non-nil if any file failed, so the CI caller sees a
// non-zero exit while unaffected files are still translated.
func (p *Processor) Run(ctx context.Context, files []string) error {
	processedCount := 0
	skippedCount := 0
	errorCount := 0

	for i, file := range files {
		fmt.Printf("Processing %d/%d: %s\n", i+1, len(files), file)

		if p.excludes.Match(file) {
			fmt.Printf("  Skipping %s - matches exclusion list\n", file)
			skippedCount++
			continue
		}

		if err := p.ProcessFile(ctx, file); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", file, err)
			errorCount++
			continue
		}
		processedCount++
	}

	if len(files) > 1 {
		fmt.Printf("\n=== Translation Summary ===\n")
		fmt.Printf("Total files: %d\n", len(files))
		fmt.Printf("Translated: %d\n", processedCount)
		fmt.Printf("Skipped (excluded): %d\n", skippedCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d of %d files failed", errorCount, len(files))
	}
	return nil
}

// ProcessFile translates a single file and writes its counterpart. Nothing
// is written unless every translatable segment succeeded.
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	target, err := p.targetLang(doc)
	if err != nil {
		return err
	}

	outPath, err := document.CounterpartPath(path, target)
	if err != nil {
		return err
	}

	if p.flags.DryRun {
		p.reportDryRun(doc, outPath)
		return nil
	}

	if p.flags.CheckSpelling {
		p.reportSpelling(ctx, doc)
	}

	output, err := document.Reassemble(doc.Segments, func(seg document.Segment) (string, error) {
		return p.translator.TranslateSegment(ctx, seg, doc.Lang, target)
	})
	if err != nil {
		return err
	}

	if err := writeFileAtomic(outPath, []byte(output)); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("  Wrote %s\n", outPath)
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place. A failed or interrupted write never leaves a
// partial file at path, and an existing counterpart survives untouched.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// targetLang resolves the translation target, honoring --target-lang over
// the filename convention
func (p *Processor) targetLang(doc *document.Document) (document.Lang, error) {
	if p.flags.TargetLang == "" {
		return doc.Lang.Counterpart(), nil
	}

	target := document.Lang(p.flags.TargetLang)
	if target != document.English && target != document.Chinese {
		return "", fmt.Errorf("invalid target language %q (want en or zh)", p.flags.TargetLang)
	}
	if target == doc.Lang {
		return "", fmt.Errorf("%s is already in the target language %q", doc.Path, target)
	}
	return target, nil
}

// reportDryRun prints what would be translated without calling the API
func (p *Processor) reportDryRun(doc *document.Document, outPath string) {
	translatable := 0
	for _, seg := range doc.Segments {
		if seg.Translatable() {
			translatable++
		}
	}
	fmt.Printf("  %s: %d segments, %d translatable, would write %s\n",
		doc.Path, len(doc.Segments), translatable, outPath)
	for _, seg := range doc.Segments {
		fmt.Printf("    line %4d  %-11s %4d bytes\n", seg.Line, seg.Kind, len(seg.Raw))
	}
}

// reportSpelling prints proofread findings for all translatable text to
// stderr: prose segments and whitelisted frontmatter values. Findings never
// fail the run.
func (p *Processor) reportSpelling(ctx context.Context, doc *document.Document) {
	check := func(text string, line int) {
		report, err := p.translator.CheckSpelling(ctx, text, doc.Lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Spelling check failed for %s line %d: %v\n", doc.Path, line, err)
			return
		}
		if report != "" {
			fmt.Fprintf(os.Stderr, "Spelling (%s line %d):\n%s\n", doc.Path, line, report)
		}
	}

	for _, seg := range doc.Segments {
		switch seg.Kind {
		case document.KindProse:
			check(seg.Raw, seg.Line)
		case document.KindFrontmatter:
			_, _ = document.RewriteFrontmatter(seg.Raw, func(value string) (string, error) {
				check(value, seg.Line)
				return value, nil
			})
		}
	}
}
