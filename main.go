package main

import (
	"os"

	"github.com/scons/sconsweb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
