package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go-staff-reports/internal/model"
)

// summaryLabels are the summary report field labels, in serialization
// order. File mode uses them as the header row.
var summaryLabels = []string{"name", "headcount", "salary range", "average salary"}

// FormatAverage renders an average salary as the shortest string that
// round-trips the float64, so writing and re-reading a saved report
// compares equal as text.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PrintHierarchy writes the department → team view to w, one department
// label per department with its teams indented beneath it.
func PrintHierarchy(w io.Writer, hierarchy *Hierarchy) {
	for _, department := range hierarchy.Departments() {
		fmt.Fprintf(w, "Department: %s\n", department)
		for _, team := range hierarchy.Teams(department) {
			fmt.Fprintf(w, "\tTeam: %s\n", team)
		}
	}
}

// PrintSummary writes one labeled block per department to w, each block
// followed by a blank separator line. Blocks stream out one at a time.
func PrintSummary(w io.Writer, summaries []model.DepartmentSummary) {
	for _, s := range summaries {
		fmt.Fprintf(w, "%s: %s\n", summaryLabels[0], s.Name)
		fmt.Fprintf(w, "%s: %d\n", summaryLabels[1], s.Headcount)
		fmt.Fprintf(w, "%s: %s\n", summaryLabels[2], s.SalaryRange())
		fmt.Fprintf(w, "%s: %s\n", summaryLabels[3], FormatAverage(s.AverageSalary))
		fmt.Fprintln(w)
	}
}

func summaryRow(s model.DepartmentSummary) []string {
	return []string{
		s.Name,
		strconv.Itoa(s.Headcount),
		s.SalaryRange(),
		FormatAverage(s.AverageSalary),
	}
}

// WriteSummary serializes the summary report to w: the header row of
// field labels, then one row per department in report order, fields
// joined by the separator.
func WriteSummary(w io.Writer, summaries []model.DepartmentSummary, separator string) error {
	if len(summaries) == 0 {
		return ErrEmptyReport
	}
	if _, err := fmt.Fprintln(w, strings.Join(summaryLabels, separator)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintln(w, strings.Join(summaryRow(s), separator)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// SaveSummary writes the summary report to a delimited file. The file
// is truncated and fully rewritten on every save.
func SaveSummary(summaries []model.DepartmentSummary, path, separator string) error {
	if len(summaries) == 0 {
		return ErrEmptyReport
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := WriteSummary(writer, summaries, separator); err != nil {
		return err
	}
	return writer.Flush()
}
