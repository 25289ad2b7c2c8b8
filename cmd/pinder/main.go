// Command pinder is an interactive playground for grid path-finding.
//
// Usage:
//
//	pinder [ROWS] [COLUMNS] [flags]
//
// Without --print, and when stdout is a terminal, pinder opens a terminal UI
// on a randomly filled board. Otherwise it runs one search and prints the
// board with the result overlaid.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
