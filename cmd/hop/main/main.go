package main

import (
	"os"

	"github.com/arthur-debert/hop/cmd/hop"
)

func main() {
	if err := hop.Execute(); err != nil {
		os.Exit(1)
	}
}
