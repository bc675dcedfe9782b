// Package cli holds the out-of-core collaborators of the report engine:
// the argument resolver, the input validator and the interactive menu.
package cli

import (
	"go-staff-reports/internal/model"
	"go-staff-reports/internal/report"
)

// Defaults used when a flag is absent.
const (
	DefaultInputFile  = "test.csv"
	DefaultOutputFile = "result.csv"
	DefaultSeparator  = ";"
)

// flagSpec tracks one recognized flag pair and where it appeared in
// argv. index 0 means "not seen": argv[0] is the program name, so no
// real flag can sit there.
type flagSpec struct {
	name  string
	short string
	long  string
	index int
	value string
}

// ResolveArgs resolves the input file, output file and separator from
// raw argv. Each flag is usable at most once and must be followed by a
// value token; unrecognized tokens are ignored; absent flags fall back
// to the defaults. No arguments at all means all defaults.
func ResolveArgs(argv []string) (model.ReportOptions, error) {
	opts := model.ReportOptions{
		InputFile:  DefaultInputFile,
		OutputFile: DefaultOutputFile,
		Separator:  DefaultSeparator,
	}
	if len(argv) <= 1 {
		return opts, nil
	}

	specs := []*flagSpec{
		{name: "input file", short: "-if", long: "--input-file", value: DefaultInputFile},
		{name: "output file", short: "-of", long: "--output-file", value: DefaultOutputFile},
		{name: "separator", short: "-s", long: "--separator", value: DefaultSeparator},
	}

	for i, token := range argv {
		for _, spec := range specs {
			if token != spec.short && token != spec.long {
				continue
			}
			if spec.index != 0 {
				return opts, report.Configf("more than one %s flag given", spec.name)
			}
			spec.index = i
		}
	}

	for _, spec := range specs {
		if spec.index+1 == len(argv) {
			return opts, report.Configf("flag %s is missing its value", spec.name)
		}
		if spec.index != 0 {
			spec.value = argv[spec.index+1]
		}
	}

	opts.InputFile = specs[0].value
	opts.OutputFile = specs[1].value
	opts.Separator = specs[2].value
	return opts, nil
}
