package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/marioIncandeza/relay-settings/cmd/relaygen"
	"github.com/marioIncandeza/relay-settings/internal/version"
)

func main() {
	rootCmd := relaygen.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RELAYGEN",
		Section: "1",
		Source:  "relaygen " + version.Version,
		Manual:  "relaygen manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
