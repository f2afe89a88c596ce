package course

// Video is a single watchable unit within a section.
type Video struct {
	ID              ID     `json:"id,omitempty"`
	TitleEN         string `json:"title_en"`
	TitleVI         string `json:"title_vi"`
	DescriptionEN   string `json:"description_en"`
	DescriptionVI   string `json:"description_vi"`
	VideoURL        string `json:"video_url"`
	QuizURL         string `json:"quiz_url,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	PointsReward    int    `json:"points_reward"`
	SortOrder       int    `json:"sort_order"`
	IsActive        bool   `json:"is_active"`
}
