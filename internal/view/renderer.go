package view

import "log"

// Renderer is the swappable display capability. The real UI lives
// outside this module; tests and the headless binary use LogRenderer.
type Renderer interface {
	RenderStats(StatsView)
	RenderApplicationList([]ApplicationRow)
	RenderSkills([]SkillTag)
	RenderProfile(ProfileCard)
	RenderJobSearch(JobSearchView)
	RenderActivity([]ActivityItem)
	Notify(level, message string)
}

// LogRenderer writes render instructions to the process log.
type LogRenderer struct{}

func (LogRenderer) RenderStats(v StatsView) {
	log.Printf("[render] stats total=%d pending=%d interviews=%d offers=%d",
		v.Total, v.Pending, v.Interviews, v.Offers)
}

func (LogRenderer) RenderApplicationList(rows []ApplicationRow) {
	log.Printf("[render] applications n=%d", len(rows))
	for _, r := range rows {
		log.Printf("[render]   %s | %s | %s | %s", r.Company, r.Position, r.StatusLabel, r.DateApplied)
	}
}

func (LogRenderer) RenderSkills(tags []SkillTag) {
	log.Printf("[render] skills n=%d", len(tags))
}

func (LogRenderer) RenderProfile(p ProfileCard) {
	log.Printf("[render] profile %s (%s) completion=%d%%", p.FullName, p.Title, p.Completion)
}

func (LogRenderer) RenderJobSearch(v JobSearchView) {
	log.Printf("[render] job search live=%d categories=%d trending=%d",
		v.LiveJobCount, len(v.Categories), len(v.TrendingJobs))
}

func (LogRenderer) RenderActivity(items []ActivityItem) {
	log.Printf("[render] activity n=%d", len(items))
}

func (LogRenderer) Notify(level, message string) {
	log.Printf("[toast] %s: %s", level, message)
}
