package main

import (
	"os"

	"github.com/Devon-White/openssg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
