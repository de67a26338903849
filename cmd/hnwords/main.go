// Package main is the entry point for the hnwords CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mypham14/hacker-news-pipeline/cmd/hnwords/commands"
)

func main() {
	cli := commands.New()
	if err := cli.Execute(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
