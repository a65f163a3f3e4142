package domain

type JobCategory struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type TrendingJob struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	Type     string `json:"type"`
	Posted   string `json:"posted"`
}

// JobSearchSnapshot is static sample data plus a cosmetic live counter.
// Read-only apart from the counter; there is no real job-search feed.
type JobSearchSnapshot struct {
	LiveJobCount int           `json:"liveJobCount"`
	Categories   []JobCategory `json:"categories"`
	TrendingJobs []TrendingJob `json:"trendingJobs"`
}
