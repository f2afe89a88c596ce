package course

// Section is an ordered grouping of videos within a course.
// SortOrder is an operator-edited hint; the draft never renumbers it.
// ID is set only on sections loaded from the backend.
type Section struct {
	ID            ID      `json:"id,omitempty"`
	TitleEN       string  `json:"title_en"`
	TitleVI       string  `json:"title_vi"`
	DescriptionEN string  `json:"description_en"`
	DescriptionVI string  `json:"description_vi"`
	SortOrder     int     `json:"sort_order"`
	IsActive      bool    `json:"is_active"`
	Videos        []Video `json:"videos"`
}

func (s Section) Clone() Section {
	out := s
	out.Videos = make([]Video, len(s.Videos))
	copy(out.Videos, s.Videos)
	return out
}
