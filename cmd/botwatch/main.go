package main

import (
	"os"

	"github.com/rustyeddy/botwatch/cmd/botwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
