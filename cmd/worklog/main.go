package main

import (
	"os"

	"github.com/evolveer/workandprojectnotebook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
