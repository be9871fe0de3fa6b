package main

import (
	"os"
	"testing"
)

// unsetAll removes variables for the rest of the test. Call t.Setenv on each
// name first so the original values are restored afterwards.
func unsetAll(t *testing.T, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.Unsetenv(n); err != nil {
			t.Fatal(err)
		}
	}
}
