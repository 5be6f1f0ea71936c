package main

import (
	"fmt"
	"os"

	"dailylog/internal/cli"
)

func main() {
	app := cli.NewCLI(cli.Options{Stdout: os.Stdout})
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
