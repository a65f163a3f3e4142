package domain

import "strings"

// Status is the canonical application-status vocabulary. The legacy UI
// carried two vocabularies (lowercase keys vs. display strings); the
// lowercase keys are authoritative and display strings live in Label.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusReview    Status = "review"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusOffered   Status = "offered"
)

var statusLabels = map[Status]string{
	StatusApplied:   "Applied",
	StatusReview:    "Under Review",
	StatusInterview: "Interview",
	StatusRejected:  "Rejected",
	StatusOffered:   "Offered",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display string for s, or the raw value for
// anything outside the known set.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStatus normalizes both the canonical keys and the legacy display
// strings ("Under Review", "Interview Scheduled") found in old exports.
func ParseStatus(raw string) (Status, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "applied":
		return StatusApplied, true
	case "review", "under review":
		return StatusReview, true
	case "interview", "interview scheduled":
		return StatusInterview, true
	case "rejected":
		return StatusRejected, true
	case "offered", "offer":
		return StatusOffered, true
	}
	return Status(raw), false
}
