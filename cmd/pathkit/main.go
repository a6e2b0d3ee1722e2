package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathkit/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, cli.MsgErrorFormat, err)
		os.Exit(cli.ExitCode(err))
	}
}
