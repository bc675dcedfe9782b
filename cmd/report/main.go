package main

import (
	"fmt"
	"os"

	"go-staff-reports/internal/cli"
	"go-staff-reports/internal/model"
	"go-staff-reports/internal/report"
)

func main() {
	opts, err := cli.ResolveArgs(os.Args)
	if err != nil {
		fail(err)
	}

	if err := cli.ValidateFiles(opts.InputFile, opts.OutputFile, opts.Separator); err != nil {
		fail(err)
	}

	mode, err := cli.PromptMode(os.Stdin, os.Stdout)
	if err != nil {
		fail(err)
	}
	opts.Mode = mode

	result, err := report.Run(opts, os.Stdout)
	if err != nil {
		fail(err)
	}

	if mode == model.ModeSave {
		fmt.Printf("💾 Summary for %d departments saved to %s\n", result.Departments, result.OutputFile)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
