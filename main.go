package main

import (
	"os"

	"github.com/Devon-White/ocr-pipeline/cmd"
	"github.com/Devon-White/ocr-pipeline/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
