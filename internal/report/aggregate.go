package report

import "go-staff-reports/internal/model"

// salaryGroup accumulates the salaries observed for one department.
type salaryGroup struct {
	min   int
	max   int
	sum   int
	count int
}

func (g *salaryGroup) add(salary int) {
	if salary < g.min {
		g.min = salary
	}
	if salary > g.max {
		g.max = salary
	}
	g.sum += salary
	g.count++
}

// BuildSummary runs one pass over the input lines and computes the
// per-department summary report. Departments appear in the order they
// were first seen; a department with zero records never appears. The
// first line is always skipped as the header; a malformed later line
// aborts the whole build.
func BuildSummary(lines []string, parser Parser) ([]model.DepartmentSummary, error) {
	var order []string
	groups := make(map[string]*salaryGroup)

	for i, line := range lines {
		if i == 0 {
			continue
		}
		rec, err := parser.ParseSalary(i+1, line)
		if err != nil {
			return nil, err
		}
		group, ok := groups[rec.Department]
		if !ok {
			group = &salaryGroup{min: rec.Salary, max: rec.Salary}
			groups[rec.Department] = group
			order = append(order, rec.Department)
		}
		group.add(rec.Salary)
	}

	summaries := make([]model.DepartmentSummary, 0, len(order))
	for _, department := range order {
		group := groups[department]
		summaries = append(summaries, model.DepartmentSummary{
			Name:          department,
			Headcount:     group.count,
			MinSalary:     group.min,
			MaxSalary:     group.max,
			AverageSalary: float64(group.sum) / float64(group.count),
		})
	}
	return summaries, nil
}
