package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-staff-reports/internal/model"
	"go-staff-reports/internal/report"
)

// PromptMode prints the mode menu to w and reads one selection from r.
func PromptMode(r io.Reader, w io.Writer) (model.Mode, error) {
	fmt.Fprintln(w, "Choose a report mode.")
	fmt.Fprintln(w, "1. Print the team hierarchy: every department and the teams inside it.")
	fmt.Fprintln(w, "2. Print the department summary: name, headcount and salary range.")
	fmt.Fprintln(w, "3. Save the department summary from option 2 as a csv file.")
	fmt.Fprintln(w, "Enter a single number.")

	scanner := bufio.NewScanner(r)
	scanner.Scan()
	choice := strings.TrimSpace(scanner.Text())

	switch choice {
	case "1":
		return model.ModeHierarchy, nil
	case "2":
		return model.ModeSummary, nil
	case "3":
		return model.ModeSave, nil
	default:
		return "", report.Configf("%q is not a valid menu option", choice)
	}
}
