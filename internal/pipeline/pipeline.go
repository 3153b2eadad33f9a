package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/Devon-White/ocr-pipeline/internal/config"
	"github.com/Devon-White/ocr-pipeline/internal/writer"
	"go.uber.org/zap"
)

// Options carries the output side of a run.
type Options struct {
	Out    io.Writer
	Format writer.Format
	Logger *zap.Logger
}

// Run executes the ocr-pipeline run for a parsed invocation: it reports the
// requested page span and writes the config to opts.Out. The input document
// is not opened.
func Run(ctx context.Context, cfg config.InvocationConfig, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	span := cfg.Pages()
	log.Debug("parsed invocation",
		zap.String("input", cfg.Input),
		zap.String("keywords", cfg.Keywords),
		zap.Stringer("pages", span),
		zap.Bool("bounded", span.Bounded()),
	)

	if err := writer.WriteConfig(opts.Out, cfg, opts.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	log.Debug("done", zap.String("format", string(opts.Format)))
	return nil
}
