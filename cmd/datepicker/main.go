package main

import (
	"os"

	"github.com/goliatone/go-datepicker/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}
