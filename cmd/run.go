package main

import (
	"context"
	"log"

	"studyhub/internal/cli"
)

func Run(ctx context.Context, args []string) int {
	root := cli.NewRootCmd(Version)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Printf("studyhub: %v", err)
		return 1
	}
	return 0
}
