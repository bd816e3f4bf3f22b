package main

import (
	"os"

	"alfredoptarigan/resume-ats/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
