package records

import (
	"math"
	"strconv"
	"strings"
)

// DefaultScore is shown when the profile has no skills to compare.
const DefaultScore = 75

// Score is a skill match percentage. Known is false when there was not enough
// data to compute it and Value holds DefaultScore.
type Score struct {
	Value int
	Known bool
}

func (s Score) String() string {
	return strconv.Itoa(s.Value) + "%"
}

// ScoreMatch returns the share of profile skills found in the required skills
// text. Skills match by case-insensitive substring, so "go" matches "golang".
func ScoreMatch(profileSkills, requiredSkillsText string) Score {
	skills := skillTokens(profileSkills)
	if len(skills) == 0 {
		return Score{Value: DefaultScore}
	}

	haystack := strings.ToLower(requiredSkillsText)

	matched := 0
	for _, skill := range skills {
		if strings.Contains(haystack, skill) {
			matched++
		}
	}

	value := int(math.Floor(float64(matched)/float64(len(skills))*100 + 0.5))
	if value > 100 {
		value = 100
	}

	return Score{Value: value, Known: true}
}

func skillTokens(s string) []string {
	var tokens []string
	for _, token := range strings.Split(s, ",") {
		if token = strings.ToLower(strings.TrimSpace(token)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
