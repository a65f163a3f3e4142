package view

import (
	"fmt"
	"sort"
	"time"

	"careercatalyst-engine/internal/domain"
)

// Render instructions: renderer-agnostic descriptions of what to show.
// The projector never touches widgets; a Renderer implementation does.

type StatsView struct {
	Total      int
	Pending    int
	Interviews int
	Offers     int
}

type ApplicationRow struct {
	ID          string
	Company     string
	Position    string
	StatusKey   string
	StatusLabel string
	DateApplied string // formatted, e.g. "Oct 1, 2024"
	Salary      string
	Location    string
	Notes       string
}

type SkillTag struct {
	Name string
}

type ProfileCard struct {
	FullName   string
	Title      string
	Email      string
	Phone      string
	Location   string
	LinkedIn   string
	Summary    string
	Completion int // percent, 0..100
}

type JobSearchView struct {
	LiveJobCount int
	Categories   []CategoryCard
	TrendingJobs []TrendingJobCard
}

type CategoryCard struct {
	Name  string
	Icon  string
	Count int
}

type TrendingJobCard struct {
	Title    string
	Company  string
	Location string
	Salary   string
	Type     string
	Posted   string
}

type ActivityItem struct {
	Kind        string
	Title       string
	Description string
}

func ProjectStats(st domain.DashboardStats) StatsView {
	return StatsView{
		Total:      st.Total,
		Pending:    st.Pending,
		Interviews: st.Interviews,
		Offers:     st.Offers,
	}
}

func ProjectApplications(apps []domain.Application) []ApplicationRow {
	rows := make([]ApplicationRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, ApplicationRow{
			ID:          app.ID,
			Company:     app.Company,
			Position:    app.Position,
			StatusKey:   string(app.Status),
			StatusLabel: app.Status.Label(),
			DateApplied: formatDate(app.DateApplied),
			Salary:      app.Salary,
			Location:    app.Location,
			Notes:       app.Notes,
		})
	}
	return rows
}

func ProjectSkills(skills []string) []SkillTag {
	tags := make([]SkillTag, 0, len(skills))
	for _, s := range skills {
		tags = append(tags, SkillTag{Name: s})
	}
	return tags
}

func ProjectProfile(p domain.Profile) ProfileCard {
	return ProfileCard{
		FullName:   p.FullName,
		Title:      p.Title,
		Email:      p.Email,
		Phone:      p.Phone,
		Location:   p.Location,
		LinkedIn:   p.LinkedIn,
		Summary:    p.Summary,
		Completion: Completion(p),
	}
}

// Completion is the weighted profile score: name 20, email 20, phone
// 15, location 15, summary 15, non-empty skills 15.
func Completion(p domain.Profile) int {
	score := 0
	if p.FullName != "" {
		score += 20
	}
	if p.Email != "" {
		score += 20
	}
	if p.Phone != "" {
		score += 15
	}
	if p.Location != "" {
		score += 15
	}
	if p.Summary != "" {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 15
	}
	return score
}

func ProjectJobSearch(js domain.JobSearchSnapshot) JobSearchView {
	out := JobSearchView{LiveJobCount: js.LiveJobCount}
	for _, c := range js.Categories {
		out.Categories = append(out.Categories, CategoryCard(c))
	}
	for _, j := range js.TrendingJobs {
		out.TrendingJobs = append(out.TrendingJobs, TrendingJobCard(j))
	}
	return out
}

// ProjectActivity derives a recent-activity feed, most recent
// application date first. List position is no recency signal here:
// quick-apply prepends while the form appends, so the feed sorts on
// DateApplied instead.
func ProjectActivity(apps []domain.Application, limit int) []ActivityItem {
	sorted := append([]domain.Application(nil), apps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AppliedAt().After(sorted[j].AppliedAt())
	})

	var out []ActivityItem
	for _, app := range sorted {
		if len(out) == limit {
			break
		}
		title := fmt.Sprintf("Applied to %s", app.Company)
		if app.Status == domain.StatusInterview {
			title = "Interview Scheduled"
		}
		out = append(out, ActivityItem{
			Kind:        string(app.Status),
			Title:       title,
			Description: fmt.Sprintf("%s - %s", app.Company, app.Position),
		})
	}
	return out
}

func formatDate(raw string) string {
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006")
}
