package main

import (
	"fmt"
	"os"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
