package domain

import "time"

// DateLayout is the wire form for application dates. The persisted blob
// keeps plain YYYY-MM-DD strings so snapshots stay stable across saves.
const DateLayout = "2006-01-02"

type Application struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Position      string `json:"position"`
	Status        Status `json:"status"`
	DateApplied   string `json:"dateApplied"`
	Salary        string `json:"salary"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
	FollowUpDate  string `json:"followUpDate,omitempty"`
	InterviewDate string `json:"interviewDate,omitempty"`
}

// AppliedAt parses DateApplied; zero time if the field is empty or junk.
func (a Application) AppliedAt() time.Time {
	t, _ := time.Parse(DateLayout, a.DateApplied)
	return t
}

type DashboardStats struct {
	Total      int `json:"totalApplications"`
	Pending    int `json:"pending"`
	Interviews int `json:"interviews"`
	Offers     int `json:"offers"`
}
