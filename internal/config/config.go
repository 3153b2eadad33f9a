package config

import (
	"fmt"

	"github.com/Devon-White/ocr-pipeline/internal/pages"
)

// Default page bounds applied when the corresponding flag is omitted.
const (
	DefaultStartPage uint = 1
	NoEndPage        uint = pages.NoEnd
)

// InvocationConfig holds the parsed options of one ocr-pipeline run.
// It is built once by the root command and passed by value afterwards.
type InvocationConfig struct {
	Input     string `json:"input"`    // not checked for existence
	Keywords  string `json:"keywords"` // opaque, not split
	StartPage uint   `json:"start_page"`
	EndPage   uint   `json:"end_page"`
}

// Default returns a config with the default page bounds and no input.
func Default() InvocationConfig {
	return InvocationConfig{
		StartPage: DefaultStartPage,
		EndPage:   NoEndPage,
	}
}

// Bounded reports whether an end page was requested.
func (c InvocationConfig) Bounded() bool {
	return c.EndPage != NoEndPage
}

// Pages returns the requested page span.
func (c InvocationConfig) Pages() pages.Range {
	return pages.Range{Start: c.StartPage, End: c.EndPage}
}

// String returns the debug representation printed after a successful parse.
func (c InvocationConfig) String() string {
	return fmt.Sprintf("InvocationConfig { input: %q, keywords: %q, start_page: %d, end_page: %d }",
		c.Input, c.Keywords, c.StartPage, c.EndPage)
}

func (c InvocationConfig) GoString() string {
	return c.String()
}
