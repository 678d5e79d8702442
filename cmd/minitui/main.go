// Package main provides the minitui command.
//
// Usage:
//
//	minitui run [--layout FILE | --demo NAME] [--watch] [--fps N]
//	minitui layout [FILE] --width W --height H
//	minitui snapshot [FILE] --width W --height H [--input TEXT]
//	minitui version
//
// Examples:
//
//	minitui run --demo login           Interactive login form, Ctrl+C to quit
//	minitui run --layout ui.toml -w    Display ui.toml, reloading it on save
//	minitui layout ui.toml -W 80 -H 24 Print every node's resolved rectangle
//	minitui snapshot --demo dashboard  Print one painted frame as text
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minitui: %v\n", err)
		os.Exit(1)
	}
}
