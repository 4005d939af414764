package main

import (
	"fmt"
	"os"

	"todo-list/internal/cli"
)

func main() {
	root := cli.NewRootCommand(nil)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
