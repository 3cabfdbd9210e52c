// Package main is the entry point for codesctl, the offline counterpart of the
// upload endpoint: it runs the same pipeline against files on disk.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
