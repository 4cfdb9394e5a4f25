//go:build !unix

package main

import "os"

// Fallback for platforms without Dup2. Does not capture runtime-level stderr
// output (panics) reliably, but keeps builds working.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
