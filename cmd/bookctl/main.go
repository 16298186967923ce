package main

import (
	"os"

	"github.com/SscSPs/bookkeeping_core/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
