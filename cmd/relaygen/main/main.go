package main

import (
	"fmt"
	"os"

	"github.com/marioIncandeza/relay-settings/cmd/relaygen"
	"github.com/marioIncandeza/relay-settings/pkg/style"
)

func main() {
	rootCmd := relaygen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.FormatError(err))
		os.Exit(1)
	}
}
