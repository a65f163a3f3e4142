package state

import (
	"errors"
	"reflect"
	"testing"

	"careercatalyst-engine/internal/domain"
)

type memPersister struct {
	saves int
	last  domain.State
	err   error
}

func (m *memPersister) Save(st domain.State) error {
	m.saves++
	m.last = st
	return m.err
}

func seedStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	return New(domain.DefaultState(), p, nil), p
}

func TestAddApplicationAppearsOnceWithUniqueID(t *testing.T) {
	s, p := seedStore(t)

	app, err := s.AddApplication(ApplicationInput{Company: "Accenture", Position: "Analyst"})
	if err != nil {
		t.Fatalf("AddApplication: %v", err)
	}

	all := s.FilterApplications("all")
	var hits int
	seen := map[string]bool{}
	for _, a := range all {
		if seen[a.ID] {
			t.Fatalf("duplicate id %q in collection", a.ID)
		}
		seen[a.ID] = true
		if a.ID == app.ID {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("new application appears %d times, want 1", hits)
	}
	// form adds go to the end of the list
	if all[len(all)-1].ID != app.ID {
		t.Fatalf("form add should append, got last id %q", all[len(all)-1].ID)
	}
	if p.saves == 0 {
		t.Fatal("mutation did not persist")
	}
}

func TestAddApplicationDefaults(t *testing.T) {
	s, _ := seedStore(t)

	app, err := s.AddApplication(ApplicationInput{Company: "HCL", Position: "Operator"})
	if err != nil {
		t.Fatalf("AddApplication: %v", err)
	}
	if app.Status != domain.StatusApplied {
		t.Fatalf("default status = %q, want applied", app.Status)
	}
	if app.DateApplied == "" {
		t.Fatal("DateApplied not defaulted to today")
	}
}

func TestAddApplicationValidation(t *testing.T) {
	s, p := seedStore(t)

	cases := []struct {
		in    ApplicationInput
		field string
	}{
		{ApplicationInput{Company: "", Position: "X"}, "company"},
		{ApplicationInput{Company: "X", Position: ""}, "position"},
		{ApplicationInput{Company: "   ", Position: "X"}, "company"},
		{ApplicationInput{Company: "X", Position: "\t"}, "position"},
	}
	for _, tc := range cases {
		_, err := s.AddApplication(tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("input %+v: got %v, want ValidationError", tc.in, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("input %+v: field = %q, want %q", tc.in, verr.Field, tc.field)
		}
	}

	if got := s.ComputeStats().Total; got != 3 {
		t.Fatalf("rejected adds mutated state: total = %d, want 3", got)
	}
	if p.saves != 0 {
		t.Fatalf("rejected adds persisted %d times", p.saves)
	}
}

func TestApplyToJobPrepends(t *testing.T) {
	s, _ := seedStore(t)

	app, err := s.ApplyToJob("Senior Data Analyst", "Google")
	if err != nil {
		t.Fatalf("ApplyToJob: %v", err)
	}

	all := s.Applications()
	if all[0].ID != app.ID {
		t.Fatalf("quick apply should prepend, got first id %q", all[0].ID)
	}
	if app.Status != domain.StatusApplied {
		t.Fatalf("quick apply status = %q, want applied", app.Status)
	}
	if app.Salary != "Not specified" {
		t.Fatalf("quick apply salary = %q", app.Salary)
	}
}

func TestIDsDistinctWithinSameMillisecond(t *testing.T) {
	s, _ := seedStore(t)

	ids := map[string]bool{}
	for i := 0; i < 50; i++ {
		app, err := s.AddApplication(ApplicationInput{Company: "C", Position: "P"})
		if err != nil {
			t.Fatalf("AddApplication: %v", err)
		}
		if ids[app.ID] {
			t.Fatalf("id %q assigned twice", app.ID)
		}
		ids[app.ID] = true
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	s, _ := seedStore(t)

	if err := s.UpdateApplicationStatus("1", domain.StatusOffered); err != nil {
		t.Fatalf("UpdateApplicationStatus: %v", err)
	}
	if got := s.FilterApplications("offered"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("status not updated: %+v", got)
	}

	err := s.UpdateApplicationStatus("nope", domain.StatusApplied)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}

	err = s.UpdateApplicationStatus("1", domain.Status("ghosted"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError for unknown status", err)
	}
}

func TestUpdateApplicationEditsFields(t *testing.T) {
	s, _ := seedStore(t)

	app, err := s.UpdateApplication("2", ApplicationInput{Salary: "5-7 LPA", Status: domain.StatusInterview})
	if err != nil {
		t.Fatalf("UpdateApplication: %v", err)
	}
	if app.Salary != "5-7 LPA" || app.Status != domain.StatusInterview {
		t.Fatalf("edit not applied: %+v", app)
	}
	if app.Company != "Wipro" {
		t.Fatalf("untouched field changed: %q", app.Company)
	}
}

func TestAddSkillIdempotentOnDuplicate(t *testing.T) {
	s, _ := seedStore(t)
	before := len(s.Profile().Skills)

	if !s.AddSkill("SQL") {
		t.Fatal("first AddSkill returned false")
	}
	if s.AddSkill("SQL") {
		t.Fatal("duplicate AddSkill returned true")
	}
	if got := len(s.Profile().Skills); got != before+1 {
		t.Fatalf("skills length = %d, want %d", got, before+1)
	}

	// case-sensitive exact match: different case is a new skill
	if !s.AddSkill("sql") {
		t.Fatal("case variant should be accepted")
	}
}

func TestAddSkillBlankIsNoop(t *testing.T) {
	s, p := seedStore(t)
	before := len(s.Profile().Skills)

	if s.AddSkill("   ") || s.AddSkill("") {
		t.Fatal("blank skill accepted")
	}
	if got := len(s.Profile().Skills); got != before {
		t.Fatalf("skills length changed to %d", got)
	}
	if p.saves != 0 {
		t.Fatal("no-op persisted")
	}
}

func TestAddSkillTrims(t *testing.T) {
	s, _ := seedStore(t)
	s.AddSkill("  Tally  ")
	if !s.Profile().HasSkill("Tally") {
		t.Fatal("skill not trimmed before append")
	}
}

func TestRemoveSkill(t *testing.T) {
	s, _ := seedStore(t)
	before := len(s.Profile().Skills)

	if s.RemoveSkill("Not There") {
		t.Fatal("removing absent skill returned true")
	}
	if got := len(s.Profile().Skills); got != before {
		t.Fatalf("absent removal changed length to %d", got)
	}

	if !s.RemoveSkill("Data Entry") {
		t.Fatal("removing present skill returned false")
	}
	if got := len(s.Profile().Skills); got != before-1 {
		t.Fatalf("skills length = %d, want %d", got, before-1)
	}
	if s.Profile().HasSkill("Data Entry") {
		t.Fatal("skill still present after removal")
	}
}

func TestComputeStatsSeedScenario(t *testing.T) {
	s, _ := seedStore(t)

	got := s.ComputeStats()
	want := domain.DashboardStats{Total: 3, Pending: 2, Interviews: 1, Offers: 0}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestComputeStatsConsistentAfterMutations(t *testing.T) {
	s, _ := seedStore(t)

	check := func(step string) {
		t.Helper()
		apps := s.Applications()
		got := s.ComputeStats()
		want := domain.DashboardStats{Total: len(apps)}
		for _, a := range apps {
			switch a.Status {
			case domain.StatusApplied, domain.StatusReview:
				want.Pending++
			case domain.StatusInterview:
				want.Interviews++
			case domain.StatusOffered:
				want.Offers++
			}
		}
		if got != want {
			t.Fatalf("after %s: stats = %+v, want %+v", step, got, want)
		}
	}

	check("seed")
	_, _ = s.AddApplication(ApplicationInput{Company: "A", Position: "B", Status: domain.StatusOffered})
	check("add offered")
	_, _ = s.ApplyToJob("Excel Specialist", "Microsoft")
	check("quick apply")
	_ = s.UpdateApplicationStatus("3", domain.StatusRejected)
	check("reject")
	_ = s.UpdateApplicationStatus("1", domain.StatusInterview)
	check("move to interview")
}

func TestSearchApplications(t *testing.T) {
	s, _ := seedStore(t)

	got := s.SearchApplications("info")
	if len(got) != 1 || got[0].Company != "Infosys" {
		t.Fatalf("search %q = %+v, want the Infosys entry", "info", got)
	}

	// matches position too, case-insensitively
	got = s.SearchApplications("DATA")
	if len(got) != 2 {
		t.Fatalf("search DATA returned %d entries, want 2", len(got))
	}
	if got[0].Company != "TCS" || got[1].Company != "Infosys" {
		t.Fatalf("search did not preserve store order: %+v", got)
	}

	if got := s.SearchApplications("zzz"); len(got) != 0 {
		t.Fatalf("search zzz = %+v, want none", got)
	}
}

func TestFilterApplicationsSentinels(t *testing.T) {
	s, _ := seedStore(t)

	if got := s.FilterApplications("all"); len(got) != 3 {
		t.Fatalf("filter all = %d entries", len(got))
	}
	if got := s.FilterApplications(""); len(got) != 3 {
		t.Fatalf("filter \"\" = %d entries", len(got))
	}
	if got := s.FilterApplications("review"); len(got) != 1 || got[0].Company != "Wipro" {
		t.Fatalf("filter review = %+v", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src, _ := seedStore(t)
	_, _ = src.AddApplication(ApplicationInput{Company: "Accenture", Position: "MIS Analyst"})
	src.AddSkill("SQL")

	blob, err := src.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	dst, _ := seedStore(t)
	if err := dst.ImportSnapshot(blob); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	if !reflect.DeepEqual(dst.Applications(), src.Applications()) {
		t.Fatal("applications do not survive the round trip")
	}
	if !reflect.DeepEqual(dst.Profile().Skills, src.Profile().Skills) {
		t.Fatal("skills do not survive the round trip")
	}
}

func TestImportSnapshotMalformedLeavesStateUntouched(t *testing.T) {
	s, p := seedStore(t)
	before, err := s.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}
	savesBefore := p.saves

	impErr := s.ImportSnapshot("not valid json")
	var ierr *ImportError
	if !errors.As(impErr, &ierr) {
		t.Fatalf("got %v, want ImportError", impErr)
	}

	after, err := s.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}
	if before != after {
		t.Fatal("state changed after failed import")
	}
	if p.saves != savesBefore {
		t.Fatal("failed import persisted")
	}
}

func TestImportSnapshotMergesPerTopLevelKey(t *testing.T) {
	s, _ := seedStore(t)

	// only profile present: applications must survive
	err := s.ImportSnapshot(`{"profile":{"name":"New Name","skills":["Only"]}}`)
	if err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}
	if got := s.Profile().FullName; got != "New Name" {
		t.Fatalf("profile not replaced: %q", got)
	}
	if got := len(s.Applications()); got != 3 {
		t.Fatalf("applications clobbered by partial import: %d", got)
	}
}

func TestImportSnapshotNormalizesLegacyStatuses(t *testing.T) {
	s, _ := seedStore(t)

	err := s.ImportSnapshot(`{"applications":[
		{"id":"9","company":"TCS","position":"Analyst","status":"Under Review","dateApplied":"2024-10-01"},
		{"id":"10","company":"Infosys","position":"Clerk","status":"Interview Scheduled","dateApplied":"2024-10-02"}
	]}`)
	if err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	apps := s.Applications()
	if apps[0].Status != domain.StatusReview || apps[1].Status != domain.StatusInterview {
		t.Fatalf("legacy statuses not normalized: %q, %q", apps[0].Status, apps[1].Status)
	}
	if got := s.ComputeStats(); got.Interviews != 1 || got.Pending != 1 {
		t.Fatalf("stats over imported legacy data: %+v", got)
	}
}

func TestPersistenceFailureDoesNotFailMutation(t *testing.T) {
	p := &memPersister{err: errors.New("disk full")}
	s := New(domain.DefaultState(), p, nil)

	if _, err := s.AddApplication(ApplicationInput{Company: "C", Position: "P"}); err != nil {
		t.Fatalf("mutation failed on persistence error: %v", err)
	}
	if got := s.ComputeStats().Total; got != 4 {
		t.Fatalf("state not mutated: total = %d", got)
	}
}

func TestBumpLiveJobs(t *testing.T) {
	s, _ := seedStore(t)
	before := s.JobSearch().LiveJobCount
	got := s.BumpLiveJobs(7)
	if got != before+7 {
		t.Fatalf("BumpLiveJobs = %d, want %d", got, before+7)
	}
}
