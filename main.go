package main

import (
	"os"

	"github.com/acodcha/phq-sub004/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
