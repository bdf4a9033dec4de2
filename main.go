package main

import (
	"os"

	"github.com/czz/discolor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
