package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Devon-White/ocr-pipeline/internal/config"
)

// Format selects how a parsed invocation is rendered.
type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
)

// Formats lists the accepted values of --format.
func Formats() []string {
	return []string{string(FormatDebug), string(FormatJSON)}
}

// WriteConfig renders cfg to w in the requested format, newline terminated.
func WriteConfig(w io.Writer, cfg config.InvocationConfig, format Format) error {
	switch format {
	case FormatDebug, "":
		if _, err := fmt.Fprintln(w, cfg.String()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
