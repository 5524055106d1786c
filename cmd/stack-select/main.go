package main

import (
	"os"

	"github.com/danieljhkim/stack-select/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
