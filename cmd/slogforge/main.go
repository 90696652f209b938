package main

import (
	"os"

	"slogforge/cmd/slogforge/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
