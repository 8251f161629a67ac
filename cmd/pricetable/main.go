package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	ctx := context.Background()

	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version+" ("+commit+")"),
	); err != nil {
		os.Exit(1)
	}
}
