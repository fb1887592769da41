package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/reorder/pkg/interfaces/cli/commands"
)

func main() {
	cmd := commands.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, nil)
	ctx := context.Background()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
