package course

// Course is the draft of a course as it is edited in the back-office and
// forwarded to the backend. It carries no id of its own: the backend
// assigns one on create.
type Course struct {
	TitleEN          string   `json:"title_en" validate:"notblank"`
	TitleVI          string   `json:"title_vi" validate:"notblank"`
	DescriptionEN    string   `json:"description_en"`
	DescriptionVI    string   `json:"description_vi"`
	PriceUSD         float64  `json:"price_usd" validate:"gt=0"`
	PriceVND         float64  `json:"price_vnd" validate:"gt=0"`
	OriginalPriceUSD *float64 `json:"original_price_usd,omitempty"`
	OriginalPriceVND *float64 `json:"original_price_vnd,omitempty"`
	Level            string   `json:"level"`    // beginner, intermediate, advanced
	Category         string   `json:"category"` // e.g. ielts, toeic, communication
	Duration         string   `json:"duration"` // free text shown on the catalog, e.g. "8 weeks"
	InstructorID     string   `json:"instructor_id,omitempty"`
	IsActive         bool     `json:"is_active"`
	TotalVideos      int      `json:"total_videos"`

	Sections []Section `json:"sections"`
}

// CountVideos sums the videos of every section.
func (c *Course) CountVideos() int {
	total := 0
	for _, s := range c.Sections {
		total += len(s.Videos)
	}
	return total
}

// Clone returns a deep copy; nested slices and optional prices are not shared.
func (c Course) Clone() Course {
	out := c
	if c.OriginalPriceUSD != nil {
		v := *c.OriginalPriceUSD
		out.OriginalPriceUSD = &v
	}
	if c.OriginalPriceVND != nil {
		v := *c.OriginalPriceVND
		out.OriginalPriceVND = &v
	}
	out.Sections = make([]Section, len(c.Sections))
	for i, s := range c.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}
