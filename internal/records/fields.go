package records

import "strings"

// Canonical field names shared by listings and profiles.
const (
	FieldID              = "id"
	FieldCompanyName     = "company_name"
	FieldRole            = "role"
	FieldLocation        = "location"
	FieldDescription     = "description"
	FieldRequiredSkills  = "required_skills"
	FieldAcceptanceRate  = "acceptance_rate"
	FieldGhostRate       = "ghost_rate"
	FieldAvgResponseDays = "avg_response_days"

	FieldFullName = "full_name"
	FieldMajor    = "major"
	FieldBio      = "bio"
	FieldSkills   = "skills"
)

// aliases lists accepted header spellings per canonical field, in priority order.
var aliases = map[string][]string{
	FieldID:              {"ID", "id"},
	FieldCompanyName:     {"Company Name", "company", "company_name"},
	FieldRole:            {"Role", "role"},
	FieldLocation:        {"Location", "location"},
	FieldDescription:     {"Description", "description"},
	FieldRequiredSkills:  {"Required Skills", "Skills Required", "required_skills"},
	FieldAcceptanceRate:  {"Acceptance rate%", "Acceptance Rate", "acceptance_rate"},
	FieldGhostRate:       {"Ghost Rate%", "Ghost Rate", "ghost_rate"},
	FieldAvgResponseDays: {"Avg. response Days", "avg_response_days"},

	FieldFullName: {"Full Name", "full_name"},
	FieldMajor:    {"Major", "major"},
	FieldBio:      {"Bio", "bio"},
	FieldSkills:   {"My Skills", "my_skills", "skills"},
}

// lookup maps a folded spelling to its canonical field and priority.
var lookup = buildLookup()

type alias struct {
	field    string
	priority int
}

func buildLookup() map[string]alias {
	result := make(map[string]alias)
	for field, spellings := range aliases {
		for priority, spelling := range spellings {
			key := foldHeader(spelling)
			if _, exists := result[key]; exists {
				continue
			}
			result[key] = alias{field: field, priority: priority}
		}
	}
	return result
}

func foldHeader(header string) string {
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

// CanonicalField returns the canonical field name for a header spelling.
func CanonicalField(header string) (string, bool) {
	a, ok := lookup[foldHeader(header)]
	if !ok {
		return "", false
	}
	return a.field, true
}

// Canonical returns the record keyed by canonical field names with trimmed values.
// When several spellings of a field are present, the highest priority spelling
// with a non-blank value wins. Unknown headers are kept under their own name.
func (r Record) Canonical() map[string]string {
	result := make(map[string]string, len(r))
	best := make(map[string]int, len(r))

	for header, raw := range r {
		value := strings.TrimSpace(raw)

		a, ok := lookup[foldHeader(header)]
		if !ok {
			result[header] = value
			continue
		}

		current, seen := best[a.field]
		switch {
		case !seen:
		case value == "":
			continue
		case result[a.field] != "" && current <= a.priority:
			continue
		}

		result[a.field] = value
		best[a.field] = a.priority
	}

	return result
}
