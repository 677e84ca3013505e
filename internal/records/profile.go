package records

import "strings"

// Profile is the canonical view of the user profile record.
type Profile struct {
	FullName string            `json:"full_name,omitempty" mapstructure:"full_name"`
	Major    string            `json:"major,omitempty" mapstructure:"major"`
	Bio      string            `json:"bio,omitempty" mapstructure:"bio"`
	Skills   string            `json:"skills,omitempty" mapstructure:"skills"`
	Extra    map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

func NewProfile(record Record) (*Profile, error) {
	var profile Profile
	if err := decode(record.Canonical(), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SkillList splits the skills field on commas for display, dropping empty entries.
func (p *Profile) SkillList() []string {
	if p == nil {
		return nil
	}

	var skills []string
	for _, skill := range strings.Split(p.Skills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
