package state

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"careercatalyst-engine/internal/domain"
	"careercatalyst-engine/internal/events"
)

// Persister writes the full state blob. localstore.Adapter in
// production, a stub in tests.
type Persister interface {
	Save(domain.State) error
}

// Store is the single source of truth for the dashboard. All mutations
// run under one mutex so operations keep the run-to-completion
// semantics the event loop assumes; every mutation persists the blob
// and publishes a hub event before returning.
type Store struct {
	mu       sync.Mutex
	st       domain.State
	persist  Persister
	hub      *events.Hub
	validate *validator.Validate
	lastID   int64
}

func New(st domain.State, persist Persister, hub *events.Hub) *Store {
	v := validator.New()
	// "required" alone passes whitespace-only strings; the form fields
	// need a stricter rule.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Store{
		st:       st,
		persist:  persist,
		hub:      hub,
		validate: v,
	}
}

// ApplicationInput is the add/edit form payload. Status defaults to
// "applied" when empty.
type ApplicationInput struct {
	Company       string `validate:"notblank"`
	Position      string `validate:"notblank"`
	Status        domain.Status
	DateApplied   string
	Salary        string
	Location      string
	Notes         string
	FollowUpDate  string
	InterviewDate string
}

// AddApplication validates the input, assigns a fresh id and appends
// the record (the manual form path adds at the end of the list).
func (s *Store) AddApplication(in ApplicationInput) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, err := s.buildApplication(in)
	if err != nil {
		return domain.Application{}, err
	}

	s.st.Applications = append(s.st.Applications, app)
	s.persistLocked()
	s.publish(events.TypeApplicationAdded, app)
	return app, nil
}

// ApplyToJob is the quick-apply path from a trending job card: status
// is always "applied" and the record is prepended so it shows first.
func (s *Store) ApplyToJob(title, company string) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, err := s.buildApplication(ApplicationInput{
		Company:  company,
		Position: title,
		Status:   domain.StatusApplied,
		Salary:   "Not specified",
		Location: "Remote",
		Notes:    "Applied via CareerCatalyst Pro",
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.st.Applications = append([]domain.Application{app}, s.st.Applications...)
	s.persistLocked()
	s.publish(events.TypeApplicationAdded, app)
	return app, nil
}

func (s *Store) buildApplication(in ApplicationInput) (domain.Application, error) {
	if err := s.validate.Struct(in); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return domain.Application{}, &ValidationError{
				Field:  strings.ToLower(errs[0].Field()),
				Reason: "is required",
			}
		}
		return domain.Application{}, &ValidationError{Field: "input", Reason: err.Error()}
	}

	status := in.Status
	if status == "" {
		status = domain.StatusApplied
	}
	if !status.Valid() {
		return domain.Application{}, &ValidationError{Field: "status", Reason: "unknown value " + strconv.Quote(string(status))}
	}

	date := in.DateApplied
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}

	return domain.Application{
		ID:            s.nextID(),
		Company:       in.Company,
		Position:      in.Position,
		Status:        status,
		DateApplied:   date,
		Salary:        in.Salary,
		Location:      in.Location,
		Notes:         in.Notes,
		FollowUpDate:  in.FollowUpDate,
		InterviewDate: in.InterviewDate,
	}, nil
}

// nextID keeps the legacy Date.now() decimal-string form but bumps on
// same-millisecond collisions so ids stay unique within the store.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) UpdateApplicationStatus(id string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown value " + strconv.Quote(string(status))}
	}

	i := s.indexOfLocked(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}

	s.st.Applications[i].Status = status
	s.persistLocked()
	s.publish(events.TypeApplicationUpdated, s.st.Applications[i])
	return nil
}

// UpdateApplication edits an existing record in place; the id, and any
// input field left empty, are preserved.
func (s *Store) UpdateApplication(id string, in ApplicationInput) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return domain.Application{}, &NotFoundError{ID: id}
	}

	app := s.st.Applications[i]
	if strings.TrimSpace(in.Company) != "" {
		app.Company = in.Company
	}
	if strings.TrimSpace(in.Position) != "" {
		app.Position = in.Position
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return domain.Application{}, &ValidationError{Field: "status", Reason: "unknown value " + strconv.Quote(string(in.Status))}
		}
		app.Status = in.Status
	}
	if in.DateApplied != "" {
		app.DateApplied = in.DateApplied
	}
	if in.Salary != "" {
		app.Salary = in.Salary
	}
	if in.Location != "" {
		app.Location = in.Location
	}
	if in.Notes != "" {
		app.Notes = in.Notes
	}
	if in.FollowUpDate != "" {
		app.FollowUpDate = in.FollowUpDate
	}
	if in.InterviewDate != "" {
		app.InterviewDate = in.InterviewDate
	}

	s.st.Applications[i] = app
	s.persistLocked()
	s.publish(events.TypeApplicationUpdated, app)
	return app, nil
}

func (s *Store) indexOfLocked(id string) int {
	for i, app := range s.st.Applications {
		if app.ID == id {
			return i
		}
	}
	return -1
}

// UpdateProfile replaces the personal fields. Skills are owned by the
// skill operations and kept as-is.
func (s *Store) UpdateProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Skills = s.st.Profile.Skills
	s.st.Profile = p
	s.persistLocked()
	s.publish(events.TypeProfileUpdated, nil)
}

// AddSkill trims and appends. Blank input and exact duplicates are
// silent no-ops, same as the legacy includes() guard.
func (s *Store) AddSkill(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" || s.st.Profile.HasSkill(trimmed) {
		return false
	}

	s.st.Profile.Skills = append(s.st.Profile.Skills, trimmed)
	s.persistLocked()
	s.publish(events.TypeSkillAdded, map[string]string{"skill": trimmed})
	return true
}

func (s *Store) RemoveSkill(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, skill := range s.st.Profile.Skills {
		if skill == name {
			s.st.Profile.Skills = append(s.st.Profile.Skills[:i], s.st.Profile.Skills[i+1:]...)
			s.persistLocked()
			s.publish(events.TypeSkillRemoved, map[string]string{"skill": name})
			return true
		}
	}
	return false
}

// BumpLiveJobs perturbs the cosmetic live counter and returns the new
// value. Fired from the scheduler tick.
func (s *Store) BumpLiveJobs(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.JobSearchData.LiveJobCount += delta
	s.publish(events.TypeLiveJobsTick, map[string]int{"liveJobCount": s.st.JobSearchData.LiveJobCount})
	return s.st.JobSearchData.LiveJobCount
}

// Applications returns a copy of the full list in store order.
func (s *Store) Applications() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Application(nil), s.st.Applications...)
}

// FilterApplications returns the applications matching status; "" and
// "all" are sentinels for everything.
func (s *Store) FilterApplications(status string) []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == "" || status == "all" {
		return append([]domain.Application(nil), s.st.Applications...)
	}

	var out []domain.Application
	for _, app := range s.st.Applications {
		if string(app.Status) == status {
			out = append(out, app)
		}
	}
	return out
}

// SearchApplications does a case-insensitive substring match on company
// and position, preserving store order.
func (s *Store) SearchApplications(term string) []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(term)
	var out []domain.Application
	for _, app := range s.st.Applications {
		if strings.Contains(strings.ToLower(app.Company), needle) ||
			strings.Contains(strings.ToLower(app.Position), needle) {
			out = append(out, app)
		}
	}
	return out
}

// ComputeStats rescans the collection every time. Nothing increments
// counters anywhere else, so the numbers cannot drift from the list.
func (s *Store) ComputeStats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeStats(s.st.Applications)
}

func computeStats(apps []domain.Application) domain.DashboardStats {
	st := domain.DashboardStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case domain.StatusApplied, domain.StatusReview:
			st.Pending++
		case domain.StatusInterview:
			st.Interviews++
		case domain.StatusOffered:
			st.Offers++
		}
	}
	return st
}

func (s *Store) Profile() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.st.Profile
	p.Skills = append([]string(nil), p.Skills...)
	return p
}

func (s *Store) JobSearch() domain.JobSearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	js := s.st.JobSearchData
	js.Categories = append([]domain.JobCategory(nil), js.Categories...)
	js.TrendingJobs = append([]domain.TrendingJob(nil), js.TrendingJobs...)
	return js
}

// Snapshot returns a deep copy of the full blob with stats recomputed.
func (s *Store) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st.Clone()
	st.Stats = computeStats(st.Applications)
	return st
}

// Flush forces a save outside the mutation path; the shutdown hook and
// the autosave tick use it.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}

func (s *Store) persistLocked() {
	s.st.Stats = computeStats(s.st.Applications)
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.st.Clone()); err != nil {
		perr := &PersistenceError{Op: "save", Err: err}
		log.Printf("[state] %v", perr)
		if s.hub != nil {
			s.hub.Publish(events.MakeEvent("", events.TypePersistenceWarning, 1, map[string]string{"error": perr.Error()}))
		}
	}
}

func (s *Store) publish(typ string, data any) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(events.MakeEvent("", typ, 1, data))
}
