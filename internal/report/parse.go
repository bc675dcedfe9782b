package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Field positions of the input format. Lines must carry at least
// minFields fields; anything past the ones a mode needs is ignored.
const (
	fieldDepartment = 1
	fieldTeam       = 2
	minFields       = 3
)

// TeamRecord is the (department, team) pair of one data line.
type TeamRecord struct {
	Department string
	Team       string
}

// SalaryRecord is the (department, salary) pair of one data line.
type SalaryRecord struct {
	Department string
	Salary     int
}

// Parser splits raw lines into fields on a verbatim separator. There is
// no quoting or escaping: the separator never appears inside a value.
type Parser struct {
	Separator string
}

func (p Parser) split(lineNo int, line string) ([]string, error) {
	fields := strings.Split(line, p.Separator)
	if len(fields) < minFields {
		return nil, &FormatError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}
	return fields, nil
}

// ParseTeam extracts the department and team fields from a data line.
func (p Parser) ParseTeam(lineNo int, line string) (TeamRecord, error) {
	fields, err := p.split(lineNo, line)
	if err != nil {
		return TeamRecord{}, err
	}
	return TeamRecord{Department: fields[fieldDepartment], Team: fields[fieldTeam]}, nil
}

// ParseSalary extracts the department field and the trailing salary
// field from a data line.
func (p Parser) ParseSalary(lineNo int, line string) (SalaryRecord, error) {
	fields, err := p.split(lineNo, line)
	if err != nil {
		return SalaryRecord{}, err
	}
	raw := strings.TrimSpace(fields[len(fields)-1])
	salary, err := strconv.Atoi(raw)
	if err != nil {
		return SalaryRecord{}, &FormatError{
			Line:   lineNo,
			Reason: fmt.Sprintf("salary %q is not an integer", raw),
		}
	}
	return SalaryRecord{Department: fields[fieldDepartment], Salary: salary}, nil
}

// ReadLines reads the whole input file into memory, one entry per line.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return lines, nil
}
