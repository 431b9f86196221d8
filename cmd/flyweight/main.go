package main

import (
	"os"

	"github.com/goforj/flyweight/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
