package router

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"careercatalyst-engine/internal/domain"
	"careercatalyst-engine/internal/state"
	"careercatalyst-engine/internal/view"
)

// Kind names the UI event surface the router consumes.
type Kind string

const (
	KindSectionSwitch   Kind = "section_switch"
	KindAddApplication  Kind = "add_application_submit"
	KindQuickApply      Kind = "quick_apply_click"
	KindEditApplication Kind = "edit_application"
	KindUpdateStatus    Kind = "update_status"
	KindSkillEnter      Kind = "skill_input_enter"
	KindRemoveSkill     Kind = "remove_skill_click"
	KindProfileSave     Kind = "profile_save"
	KindFilterChange    Kind = "filter_select_change"
	KindSearchChange    Kind = "search_input_change"
	KindStatCardClick   Kind = "stat_card_click"
	KindExport          Kind = "export_click"
	KindImport          Kind = "import_file"
	KindLiveTick        Kind = "live_tick"
)

// Event is one UI event with whichever payload fields its kind uses.
type Event struct {
	Kind    Kind
	Section string
	Status  string
	Term    string
	Skill   string
	ID      string
	Title   string
	Company string
	Payload string
	Input   state.ApplicationInput
	Profile domain.Profile
}

// Router maps UI events to store operations and refreshes the views
// that depend on what changed. Domain errors stop here: they become
// renderer notifications, never panics or partial state.
type Router struct {
	store    *state.Store
	renderer view.Renderer

	section     string
	filter      string
	searchToast *rate.Limiter
	rng         *rand.Rand

	// Exported snapshots land here so the external file-save capability
	// can pick them up; the router itself owns no file I/O.
	OnExport func(filename, data string)

	// LiveJobsMax bounds the random counter bump per tick.
	LiveJobsMax int
}

func New(store *state.Store, renderer view.Renderer) *Router {
	return &Router{
		store:    store,
		renderer: renderer,
		section:  "dashboard",
		// one "Searching..." toast per second at most while typing
		searchToast: rate.NewLimiter(rate.Every(time.Second), 1),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		LiveJobsMax: 10,
	}
}

func (r *Router) Dispatch(ev Event) {
	switch ev.Kind {
	case KindSectionSwitch:
		r.section = ev.Section
		r.refreshSection()

	case KindAddApplication:
		if _, err := r.store.AddApplication(ev.Input); err != nil {
			r.notifyError(err)
			return
		}
		r.renderer.Notify("success", "Application added successfully!")
		r.refreshApplications()
		r.refreshStats()

	case KindQuickApply:
		app, err := r.store.ApplyToJob(ev.Title, ev.Company)
		if err != nil {
			r.notifyError(err)
			return
		}
		r.renderer.Notify("success", fmt.Sprintf("Applied to %s at %s!", app.Position, app.Company))
		r.refreshApplications()
		r.refreshStats()

	case KindEditApplication:
		if _, err := r.store.UpdateApplication(ev.ID, ev.Input); err != nil {
			r.notifyError(err)
			return
		}
		r.renderer.Notify("success", "Application updated!")
		r.refreshApplications()
		r.refreshStats()

	case KindUpdateStatus:
		if err := r.store.UpdateApplicationStatus(ev.ID, domain.Status(ev.Status)); err != nil {
			r.notifyError(err)
			return
		}
		r.refreshApplications()
		r.refreshStats()

	case KindSkillEnter:
		if r.store.AddSkill(ev.Skill) {
			r.renderer.Notify("success", fmt.Sprintf("Skill %q added!", ev.Skill))
		}
		r.refreshSkills()

	case KindRemoveSkill:
		if r.store.RemoveSkill(ev.Skill) {
			r.renderer.Notify("info", fmt.Sprintf("Skill %q removed!", ev.Skill))
		}
		r.refreshSkills()

	case KindProfileSave:
		r.store.UpdateProfile(ev.Profile)
		r.renderer.Notify("success", "Profile updated successfully!")
		r.refreshProfile()

	case KindFilterChange:
		r.filter = ev.Status
		r.renderer.RenderApplicationList(view.ProjectApplications(r.store.FilterApplications(ev.Status)))

	case KindSearchChange:
		if r.searchToast.Allow() && ev.Term != "" {
			r.renderer.Notify("info", fmt.Sprintf("Searching for %q...", ev.Term))
		}
		r.renderer.RenderApplicationList(view.ProjectApplications(r.store.SearchApplications(ev.Term)))

	case KindStatCardClick:
		// stat cards jump to the applications section pre-filtered
		r.section = "applications"
		r.filter = ev.Status
		r.renderer.RenderApplicationList(view.ProjectApplications(r.store.FilterApplications(ev.Status)))

	case KindExport:
		data, err := r.store.ExportSnapshot()
		if err != nil {
			r.notifyError(err)
			return
		}
		if r.OnExport != nil {
			r.OnExport(state.ExportFilename, data)
		}
		r.renderer.Notify("success", "Data exported successfully!")

	case KindImport:
		if err := r.store.ImportSnapshot(ev.Payload); err != nil {
			r.notifyError(err)
			return
		}
		r.renderer.Notify("success", "Data imported successfully!")
		r.refreshSection()

	case KindLiveTick:
		r.store.BumpLiveJobs(r.rng.Intn(r.LiveJobsMax))
		if r.section == "job-search" {
			r.refreshJobSearch()
		}
	}
}

// Close is the beforeunload hook: force one final save.
func (r *Router) Close() {
	r.store.Flush()
}

func (r *Router) notifyError(err error) {
	var verr *state.ValidationError
	var nferr *state.NotFoundError
	var ierr *state.ImportError
	switch {
	case errors.As(err, &verr):
		r.renderer.Notify("error", fmt.Sprintf("Please fill in the required field: %s", verr.Field))
	case errors.As(err, &nferr):
		r.renderer.Notify("error", "Application not found")
	case errors.As(err, &ierr):
		r.renderer.Notify("error", "Error importing data. Please check the file format.")
	default:
		r.renderer.Notify("error", err.Error())
	}
}

func (r *Router) refreshSection() {
	switch r.section {
	case "dashboard":
		r.refreshStats()
		r.renderer.RenderActivity(view.ProjectActivity(r.store.Applications(), 3))
	case "applications":
		r.refreshApplications()
	case "profile":
		r.refreshProfile()
		r.refreshSkills()
	case "job-search":
		r.refreshJobSearch()
	}
}

func (r *Router) refreshStats() {
	r.renderer.RenderStats(view.ProjectStats(r.store.ComputeStats()))
}

func (r *Router) refreshApplications() {
	r.renderer.RenderApplicationList(view.ProjectApplications(r.store.FilterApplications(r.filter)))
}

func (r *Router) refreshSkills() {
	r.renderer.RenderSkills(view.ProjectSkills(r.store.Profile().Skills))
}

func (r *Router) refreshProfile() {
	r.renderer.RenderProfile(view.ProjectProfile(r.store.Profile()))
}

func (r *Router) refreshJobSearch() {
	r.renderer.RenderJobSearch(view.ProjectJobSearch(r.store.JobSearch()))
}
