package model

import "fmt"

// Mode selects which view a report run produces.
type Mode string

const (
	ModeHierarchy Mode = "hierarchy" // department → team tree on stdout
	ModeSummary   Mode = "summary"   // per-department summary on stdout
	ModeSave      Mode = "save"      // per-department summary saved as a delimited file
)

// Valid reports whether m is one of the three supported modes.
func (m Mode) Valid() bool {
	return m == ModeHierarchy || m == ModeSummary || m == ModeSave
}

// ReportOptions is the full configuration of one report run.
type ReportOptions struct {
	InputFile  string `json:"inputFile"`
	OutputFile string `json:"outputFile"`
	Separator  string `json:"separator"`
	Mode       Mode   `json:"mode"`
}

// DepartmentSummary describes one department of the summary report.
type DepartmentSummary struct {
	Name          string  `json:"name"`
	Headcount     int     `json:"headcount"`
	MinSalary     int     `json:"min_salary"`
	MaxSalary     int     `json:"max_salary"`
	AverageSalary float64 `json:"average_salary"`
}

// SalaryRange returns the "<min> - <max>" span over the department's
// observed salaries.
func (s DepartmentSummary) SalaryRange() string {
	return fmt.Sprintf("%d - %d", s.MinSalary, s.MaxSalary)
}
