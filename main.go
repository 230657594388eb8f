package main

import (
	"os"

	"github.com/vincentb/aurelie/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
