package main

import (
	"os"

	"github.com/commercekit/filldb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
