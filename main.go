package main

import (
	"os"

	"github.com/alexandarmartin-KC/cvside/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
