// Command zettelview is a note-taking tool with boolean search.
package main

import (
	"os"

	"github.com/blaster151/zettelview-sub001/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
