package domain

// State is the full persisted blob: one key in the local store, fully
// rewritten on every save. Stats are derived from Applications and only
// included here so the exported file keeps the legacy shape.
type State struct {
	Profile       Profile           `json:"profile"`
	Applications  []Application     `json:"applications"`
	Stats         DashboardStats    `json:"stats"`
	JobSearchData JobSearchSnapshot `json:"jobSearchData"`
}

// DefaultState returns the seed data the dashboard ships with.
func DefaultState() State {
	return State{
		Profile: Profile{
			FullName: "Sample User",
			Email:    "user@example.com",
			Phone:    "+91-9999999999",
			Location: "Gurgaon, Haryana",
			LinkedIn: "linkedin.com/in/sampleuser",
			Title:    "Data Entry Specialist",
			Summary:  "Experienced data entry operator with advanced Excel skills and 3+ years of corporate experience seeking new opportunities in data management and analysis.",
			Skills:   []string{"Advanced Excel", "Data Entry", "Data Analysis", "Microsoft Office"},
		},
		Applications: []Application{
			{
				ID:           "1",
				Company:      "TCS",
				Position:     "Data Analyst",
				Status:       StatusApplied,
				DateApplied:  "2024-10-01",
				Salary:       "4-6 LPA",
				Location:     "Gurgaon",
				Notes:        "Applied through company website",
				FollowUpDate: "2024-10-08",
			},
			{
				ID:           "2",
				Company:      "Wipro",
				Position:     "MIS Executive",
				Status:       StatusReview,
				DateApplied:  "2024-09-28",
				Salary:       "3.5-5 LPA",
				Location:     "Noida",
				Notes:        "Recruiter contacted via LinkedIn",
				FollowUpDate: "2024-10-05",
			},
			{
				ID:            "3",
				Company:       "Infosys",
				Position:      "Data Entry Specialist",
				Status:        StatusInterview,
				DateApplied:   "2024-09-25",
				Salary:        "3-4.5 LPA",
				Location:      "Gurgaon",
				Notes:         "Interview scheduled for Oct 10th",
				InterviewDate: "2024-10-10",
			},
		},
		JobSearchData: JobSearchSnapshot{
			LiveJobCount: 45147,
			Categories: []JobCategory{
				{Name: "IT & Software", Icon: "fas fa-laptop-code", Count: 15234},
				{Name: "Banking & Finance", Icon: "fas fa-chart-line", Count: 8456},
				{Name: "Sales & Marketing", Icon: "fas fa-handshake", Count: 12789},
				{Name: "Data & Analytics", Icon: "fas fa-database", Count: 5672},
			},
			TrendingJobs: []TrendingJob{
				{Title: "Senior Data Analyst", Company: "Google", Location: "Bangalore", Salary: "15-25 LPA", Type: "Full-time", Posted: "2 hours ago"},
				{Title: "Excel Specialist", Company: "Microsoft", Location: "Hyderabad", Salary: "8-12 LPA", Type: "Full-time", Posted: "4 hours ago"},
			},
		},
	}
}

// Clone deep-copies the blob so readers never alias store-owned slices.
func (s State) Clone() State {
	out := s
	out.Profile.Skills = append([]string(nil), s.Profile.Skills...)
	out.Applications = append([]Application(nil), s.Applications...)
	out.JobSearchData.Categories = append([]JobCategory(nil), s.JobSearchData.Categories...)
	out.JobSearchData.TrendingJobs = append([]TrendingJob(nil), s.JobSearchData.TrendingJobs...)
	return out
}
