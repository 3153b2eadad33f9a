package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/Devon-White/ocr-pipeline/internal/config"
	"github.com/Devon-White/ocr-pipeline/internal/writer"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() config.InvocationConfig {
	cfg := config.Default()
	cfg.Input = "scan.pdf"
	cfg.Keywords = "invoice,total"
	return cfg
}

func TestRunWritesConfig(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := testConfig()
	err := Run(context.Background(), cfg, Options{Out: &out, Format: writer.FormatDebug})
	require.NoError(t, err)
	require.Equal(t, cfg.String()+"\n", out.String())
}

func TestRunLogsInvocation(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	cfg := testConfig()
	cfg.StartPage = 2
	cfg.EndPage = 5

	err := Run(context.Background(), cfg, Options{Out: &bytes.Buffer{}, Format: writer.FormatJSON, Logger: zap.New(core)})
	require.NoError(t, err)

	entries := logs.FilterMessage("parsed invocation").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "scan.pdf", fields["input"])
	require.Equal(t, "2-5", fields["pages"])
	require.Equal(t, true, fields["bounded"])
	require.Equal(t, 1, logs.FilterMessage("done").Len())
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, testConfig(), Options{Out: &out})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestRunUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), testConfig(), Options{Out: &bytes.Buffer{}, Format: "xml"})
	require.ErrorContains(t, err, "output:")
}
