package main

import (
	"os"

	"github.com/evyataryagoni/devtools/internal/cli"
	"github.com/evyataryagoni/devtools/internal/config"
	"github.com/evyataryagoni/devtools/internal/probe"
)

// Quick check of an OpenAI API key against gpt-5-nano
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run ./cmd/check-key
func main() {
	cfg := config.Load()

	cmd := cli.NewCheckKeyCommand(cfg, probe.Options{})
	os.Exit(cli.Execute(cmd, os.Stderr))
}
