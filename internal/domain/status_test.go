package domain

import "testing"

func TestStatusLabels(t *testing.T) {
	cases := map[Status]string{
		StatusApplied:   "Applied",
		StatusReview:    "Under Review",
		StatusInterview: "Interview",
		StatusRejected:  "Rejected",
		StatusOffered:   "Offered",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", s, got, want)
		}
	}
	if got := Status("ghosted").Label(); got != "ghosted" {
		t.Errorf("unknown label = %q", got)
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"applied", StatusApplied, true},
		{"review", StatusReview, true},
		{"Under Review", StatusReview, true},
		{"Interview Scheduled", StatusInterview, true},
		{"INTERVIEW", StatusInterview, true},
		{" Offered ", StatusOffered, true},
		{"Rejected", StatusRejected, true},
		{"ghosted", Status("ghosted"), false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAppliedAt(t *testing.T) {
	app := Application{DateApplied: "2024-10-01"}
	got := app.AppliedAt()
	if got.Year() != 2024 || got.Month() != 10 || got.Day() != 1 {
		t.Fatalf("AppliedAt = %v", got)
	}

	if !(Application{DateApplied: "junk"}).AppliedAt().IsZero() {
		t.Fatal("junk date did not parse to zero time")
	}
	if !(Application{}).AppliedAt().IsZero() {
		t.Fatal("empty date did not parse to zero time")
	}
}

func TestDefaultStateSeed(t *testing.T) {
	st := DefaultState()
	if len(st.Applications) != 3 {
		t.Fatalf("seed has %d applications", len(st.Applications))
	}
	for _, app := range st.Applications {
		if !app.Status.Valid() {
			t.Errorf("seed application %s has invalid status %q", app.ID, app.Status)
		}
	}
	if len(st.Profile.Skills) != 4 {
		t.Fatalf("seed has %d skills", len(st.Profile.Skills))
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := DefaultState()
	b := a.Clone()
	b.Applications[0].Company = "Changed"
	b.Profile.Skills[0] = "Changed"
	if a.Applications[0].Company == "Changed" || a.Profile.Skills[0] == "Changed" {
		t.Fatal("Clone shares backing arrays")
	}
}
