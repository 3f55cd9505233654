//go:build !(js && wasm)

package main

import (
	"errors"
	"fmt"
	"os"

	"jander/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrDiagnostics) {
			fmt.Fprintf(os.Stderr, "jander: %v\n", err)
		}
		os.Exit(1)
	}
}
