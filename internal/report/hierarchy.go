package report

// Hierarchy groups team names under their department. Departments keep
// the order they were first seen in; teams form an unordered set.
type Hierarchy struct {
	order []string
	teams map[string]map[string]struct{}
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{teams: make(map[string]map[string]struct{})}
}

// Add records a team under a department. Duplicate pairs collapse.
func (h *Hierarchy) Add(department, team string) {
	set, ok := h.teams[department]
	if !ok {
		set = make(map[string]struct{})
		h.teams[department] = set
		h.order = append(h.order, department)
	}
	set[team] = struct{}{}
}

// Departments returns department names in first-seen order.
func (h *Hierarchy) Departments() []string {
	return h.order
}

// Teams returns the team names of a department, in no particular order.
func (h *Hierarchy) Teams(department string) []string {
	set := h.teams[department]
	teams := make([]string, 0, len(set))
	for team := range set {
		teams = append(teams, team)
	}
	return teams
}

// Len returns the number of distinct departments.
func (h *Hierarchy) Len() int {
	return len(h.order)
}

// BuildHierarchy runs one pass over the input lines and groups every
// team under its department. The first line is always skipped as the
// header; a malformed later line aborts the whole build.
func BuildHierarchy(lines []string, parser Parser) (*Hierarchy, error) {
	hierarchy := NewHierarchy()
	for i, line := range lines {
		if i == 0 {
			continue
		}
		rec, err := parser.ParseTeam(i+1, line)
		if err != nil {
			return nil, err
		}
		hierarchy.Add(rec.Department, rec.Team)
	}
	return hierarchy, nil
}
