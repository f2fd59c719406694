// Package main is the entry point for the gensource plugin harness.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/gensource/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
