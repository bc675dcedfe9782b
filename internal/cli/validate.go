package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go-staff-reports/internal/report"
)

// The second input line (the first data row) must split into exactly
// this many fields, with the last one an integer salary.
const probeFields = 6

// ValidateFiles confirms the input file is a usable report source
// before any engine logic runs: it exists, carries a .csv extension, is
// not byte-identical to the output file, and its first data row has the
// expected shape under the chosen separator.
func ValidateFiles(input, output, separator string) error {
	if _, err := os.Stat(input); err != nil {
		return report.Configf("input file %s does not exist", input)
	}
	if ext := filepath.Ext(input); ext != ".csv" {
		return report.Configf("input file %s is not a .csv file", input)
	}

	same, err := sameContents(input, output)
	if err != nil {
		return err
	}
	if same {
		return report.Configf("input and output files are the same")
	}

	return probeFirstDataRow(input, separator)
}

// sameContents reports whether both files exist and are byte-identical.
func sameContents(input, output string) (bool, error) {
	if _, err := os.Stat(output); err != nil {
		return false, nil
	}
	inputData, err := os.ReadFile(input)
	if err != nil {
		return false, fmt.Errorf("failed to read input file: %w", err)
	}
	outputData, err := os.ReadFile(output)
	if err != nil {
		return false, fmt.Errorf("failed to read output file: %w", err)
	}
	return bytes.Equal(inputData, outputData), nil
}

// probeFirstDataRow checks the line after the header: exactly six
// fields, the last one an integer.
func probeFirstDataRow(input, separator string) error {
	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Scan() // header
	if !scanner.Scan() {
		return report.Configf("input file %s has the wrong format", input)
	}
	fields := strings.Split(scanner.Text(), separator)
	if len(fields) != probeFields {
		return report.Configf("input file %s has the wrong format", input)
	}
	if _, err := strconv.Atoi(strings.TrimSpace(fields[probeFields-1])); err != nil {
		return report.Configf("input file %s has the wrong format", input)
	}
	return nil
}
