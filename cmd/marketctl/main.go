// Package main is marketctl, the operator CLI for a sqlite-backed
// marketplace store. It reads entities and their event history, runs
// deadline sweeps, and applies single-entity transitions on behalf of a
// principal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
