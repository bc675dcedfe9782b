// Package report is the report-generation engine: it parses a delimited
// employee-records file and produces either a department → team
// hierarchy, a per-department salary summary, or that summary saved as
// a new delimited file.
package report

import (
	"io"

	"go-staff-reports/internal/model"
)

// Result describes what one engine run produced.
type Result struct {
	// Departments is the number of distinct departments encountered.
	Departments int
	// Summaries holds the summary report for ModeSummary and ModeSave
	// runs, in first-seen department order. Empty for ModeHierarchy.
	Summaries []model.DepartmentSummary
	// OutputFile is the written file for ModeSave runs.
	OutputFile string
}

// Run executes one report pass: read the whole input, build the view the
// mode asks for, render it. Text output streams to out as it is built,
// so anything written before a failure stays written; file output is
// only produced by a run that completes.
func Run(opts model.ReportOptions, out io.Writer) (*Result, error) {
	if !opts.Mode.Valid() {
		return nil, Configf("unknown report mode %q", opts.Mode)
	}

	lines, err := ReadLines(opts.InputFile)
	if err != nil {
		return nil, err
	}
	parser := Parser{Separator: opts.Separator}

	if opts.Mode == model.ModeHierarchy {
		hierarchy, err := BuildHierarchy(lines, parser)
		if err != nil {
			return nil, err
		}
		PrintHierarchy(out, hierarchy)
		return &Result{Departments: hierarchy.Len()}, nil
	}

	summaries, err := BuildSummary(lines, parser)
	if err != nil {
		return nil, err
	}
	result := &Result{Departments: len(summaries), Summaries: summaries}

	switch opts.Mode {
	case model.ModeSummary:
		PrintSummary(out, summaries)
	case model.ModeSave:
		if err := SaveSummary(summaries, opts.OutputFile, opts.Separator); err != nil {
			return nil, err
		}
		result.OutputFile = opts.OutputFile
	}
	return result, nil
}
