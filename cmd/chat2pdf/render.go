package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/config"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/hints"
)

// Sentinel errors for CLI operations.
var ErrTooManyArgs = errors.New("too many arguments")

// autoName derives the output file stem from the input file name.
const autoName = "auto"

// runRender loads the chat export and renders it.
func runRender(ctx context.Context, args []string, flags *renderFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrTooManyArgs, len(args))
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Logging.Level, env.Stdout, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	layout, err := buildLayout(cfg)
	if err != nil {
		return err
	}

	// Input failures abort before any document is created.
	records, err := chat2pdf.LoadRecords(cfg.Input.Path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w%s", err, hints.ForInputNotFound())
		case errors.Is(err, chat2pdf.ErrInvalidInput):
			return fmt.Errorf("%w%s", err, hints.ForInvalidInput())
		}
		return err
	}
	log.Info("Loaded chat messages", zap.String("input", cfg.Input.Path), zap.Int("count", len(records)))

	resolver := chat2pdf.NewDirResolver(cfg.Images.Dir)
	if err := resolver.Err(); err != nil {
		log.Warn("Image directory is not readable, image references will not resolve"+hints.ForImageDirectory(),
			zap.String("dir", cfg.Images.Dir), zap.Error(err))
	}

	opts := []chat2pdf.Option{
		chat2pdf.WithLayout(layout),
		chat2pdf.WithResolver(resolver),
		chat2pdf.WithImageLoader(&chat2pdf.FileImageLoader{JPEGQuality: cfg.Images.JPEGQuality}),
		chat2pdf.WithOutputDir(cfg.Output.Dir),
		chat2pdf.WithBaseName(resolveBaseName(cfg.Output.Name, cfg.Input.Path)),
		chat2pdf.WithLogger(log),
	}
	if env.Opener != nil {
		opts = append(opts, chat2pdf.WithSurfaceOpener(env.Opener))
	}

	renderer, err := chat2pdf.NewRenderer(opts...)
	if err != nil {
		return err
	}

	result, err := renderer.Render(ctx, records)
	if err != nil {
		if errors.Is(err, chat2pdf.ErrOpenDocument) {
			return fmt.Errorf("rendering %s: %w%s", cfg.Input.Path, err, hints.ForOutputDirectory())
		}
		return fmt.Errorf("rendering %s: %w", cfg.Input.Path, err)
	}

	if !flags.quiet {
		for _, doc := range result.Documents {
			fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", doc.Path, doc.Pages)
		}
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.images != "" {
		cfg.Images.Dir = flags.images
	}
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.name != "" {
		cfg.Output.Name = flags.output.name
	}
	if flags.layout.size != "" {
		cfg.Page.Size = flags.layout.size
	}
	if flags.layout.orientation != "" {
		cfg.Page.Orientation = flags.layout.orientation
	}
	if flags.layout.maxPages != 0 {
		cfg.Layout.MaxPagesPerDocument = flags.layout.maxPages
	}
	// Quiet wins over verbose.
	switch {
	case flags.quiet:
		cfg.Logging.Level = config.LogNone
	case flags.verbose:
		cfg.Logging.Level = config.LogDebug
	}
}

// buildLayout applies the page format and non-zero layout overrides to the
// default layout.
func buildLayout(cfg *config.Config) (chat2pdf.Layout, error) {
	l := chat2pdf.DefaultLayout()

	w, h, err := chat2pdf.PageDimensions(cfg.Page.Size, cfg.Page.Orientation)
	if err != nil {
		return l, err
	}
	l.PageWidth, l.PageHeight = w, h

	o := cfg.Layout
	setIfPositive(&l.LeftMargin, o.LeftMargin)
	setIfPositive(&l.TopMargin, o.TopMargin)
	setIfPositive(&l.BottomMargin, o.BottomMargin)
	setIfPositive(&l.TextLeading, o.TextLeading)
	setIfPositive(&l.ImagePadding, o.ImagePadding)
	setIfPositive(&l.MaxImageWidth, o.MaxImageWidth)
	setIfPositive(&l.MaxImageHeight, o.MaxImageHeight)
	if o.WrapWidth > 0 {
		l.WrapWidth = o.WrapWidth
	}
	if o.MaxPagesPerDocument != 0 {
		l.MaxPagesPerDocument = o.MaxPagesPerDocument
	}

	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// resolveBaseName returns the output file stem. "auto" slugifies the input
// file name; an empty or unusable result falls back to the default.
func resolveBaseName(name, inputPath string) string {
	if name == autoName {
		name = slug.Make(fileutil.TrimExt(inputPath))
	}
	if name == "" {
		return chat2pdf.DefaultBaseName
	}
	return name
}
