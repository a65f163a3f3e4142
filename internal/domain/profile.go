package domain

type Profile struct {
	FullName string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	LinkedIn string   `json:"linkedIn,omitempty"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Skills   []string `json:"skills"`
}

// HasSkill does a case-sensitive exact match, same as the legacy
// includes() check.
func (p Profile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}
