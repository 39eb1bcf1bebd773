// Package main provides the entry point for vmadmin.
//
// vmadmin is the voicemail administration tool. It runs an interactive
// shell by default and single commands through "vmadmin exec".
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/vmadmin-go/internal/cli/command"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", domain.Describe(err))
		os.Exit(1)
	}
}
