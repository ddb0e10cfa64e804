package main

import (
	"os"

	"github.com/bashlore/bashlore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
