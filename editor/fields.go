package editor

import (
	"errors"
	"fmt"
	"fomo/models/course"

	"github.com/bytedance/sonic"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// A CourseEdit, SectionEdit or VideoEdit sets exactly one field. They are
// built with the typed constructors below or parsed from a wire field name.
type (
	CourseEdit  func(*course.Course)
	SectionEdit func(*course.Section)
	VideoEdit   func(*course.Video)
)

// Course fields.

func CourseTitleEN(v string) CourseEdit       { return func(c *course.Course) { c.TitleEN = v } }
func CourseTitleVI(v string) CourseEdit       { return func(c *course.Course) { c.TitleVI = v } }
func CourseDescriptionEN(v string) CourseEdit { return func(c *course.Course) { c.DescriptionEN = v } }
func CourseDescriptionVI(v string) CourseEdit { return func(c *course.Course) { c.DescriptionVI = v } }
func CoursePriceUSD(v float64) CourseEdit     { return func(c *course.Course) { c.PriceUSD = v } }
func CoursePriceVND(v float64) CourseEdit     { return func(c *course.Course) { c.PriceVND = v } }
func CourseLevel(v string) CourseEdit         { return func(c *course.Course) { c.Level = v } }
func CourseCategory(v string) CourseEdit      { return func(c *course.Course) { c.Category = v } }
func CourseDuration(v string) CourseEdit      { return func(c *course.Course) { c.Duration = v } }
func CourseInstructorID(v string) CourseEdit  { return func(c *course.Course) { c.InstructorID = v } }
func CourseIsActive(v bool) CourseEdit        { return func(c *course.Course) { c.IsActive = v } }

// CourseTotalVideos sets the manually entered count. It is overridden at
// submit whenever the draft has sections.
func CourseTotalVideos(v int) CourseEdit { return func(c *course.Course) { c.TotalVideos = v } }

// CourseOriginalPriceUSD sets or, with nil, clears the original price.
func CourseOriginalPriceUSD(v *float64) CourseEdit {
	return func(c *course.Course) { c.OriginalPriceUSD = v }
}

func CourseOriginalPriceVND(v *float64) CourseEdit {
	return func(c *course.Course) { c.OriginalPriceVND = v }
}

// Section fields.

func SectionTitleEN(v string) SectionEdit       { return func(s *course.Section) { s.TitleEN = v } }
func SectionTitleVI(v string) SectionEdit       { return func(s *course.Section) { s.TitleVI = v } }
func SectionDescriptionEN(v string) SectionEdit { return func(s *course.Section) { s.DescriptionEN = v } }
func SectionDescriptionVI(v string) SectionEdit { return func(s *course.Section) { s.DescriptionVI = v } }
func SectionSortOrder(v int) SectionEdit        { return func(s *course.Section) { s.SortOrder = v } }
func SectionIsActive(v bool) SectionEdit        { return func(s *course.Section) { s.IsActive = v } }

// Video fields.

func VideoTitleEN(v string) VideoEdit       { return func(x *course.Video) { x.TitleEN = v } }
func VideoTitleVI(v string) VideoEdit       { return func(x *course.Video) { x.TitleVI = v } }
func VideoDescriptionEN(v string) VideoEdit { return func(x *course.Video) { x.DescriptionEN = v } }
func VideoDescriptionVI(v string) VideoEdit { return func(x *course.Video) { x.DescriptionVI = v } }
func VideoURL(v string) VideoEdit           { return func(x *course.Video) { x.VideoURL = v } }
func VideoQuizURL(v string) VideoEdit       { return func(x *course.Video) { x.QuizURL = v } }
func VideoDurationMinutes(v int) VideoEdit  { return func(x *course.Video) { x.DurationMinutes = v } }
func VideoPointsReward(v int) VideoEdit     { return func(x *course.Video) { x.PointsReward = v } }
func VideoSortOrder(v int) VideoEdit        { return func(x *course.Video) { x.SortOrder = v } }
func VideoIsActive(v bool) VideoEdit        { return func(x *course.Video) { x.IsActive = v } }

type fieldParser[E any] func(raw []byte) (E, error)

// parseAs decodes raw with the static type of ctor's argument.
func parseAs[V any, E any](ctor func(V) E) fieldParser[E] {
	return func(raw []byte) (E, error) {
		var v V
		if err := sonic.Unmarshal(raw, &v); err != nil {
			var zero E
			return zero, err
		}
		return ctor(v), nil
	}
}

var courseFields = map[string]fieldParser[CourseEdit]{
	"title_en":           parseAs(CourseTitleEN),
	"title_vi":           parseAs(CourseTitleVI),
	"description_en":     parseAs(CourseDescriptionEN),
	"description_vi":     parseAs(CourseDescriptionVI),
	"price_usd":          parseAs(CoursePriceUSD),
	"price_vnd":          parseAs(CoursePriceVND),
	"original_price_usd": parseAs(CourseOriginalPriceUSD),
	"original_price_vnd": parseAs(CourseOriginalPriceVND),
	"level":              parseAs(CourseLevel),
	"category":           parseAs(CourseCategory),
	"duration":           parseAs(CourseDuration),
	"instructor_id":      parseAs(CourseInstructorID),
	"is_active":          parseAs(CourseIsActive),
	"total_videos":       parseAs(CourseTotalVideos),
}

var sectionFields = map[string]fieldParser[SectionEdit]{
	"title_en":       parseAs(SectionTitleEN),
	"title_vi":       parseAs(SectionTitleVI),
	"description_en": parseAs(SectionDescriptionEN),
	"description_vi": parseAs(SectionDescriptionVI),
	"sort_order":     parseAs(SectionSortOrder),
	"is_active":      parseAs(SectionIsActive),
}

var videoFields = map[string]fieldParser[VideoEdit]{
	"title_en":         parseAs(VideoTitleEN),
	"title_vi":         parseAs(VideoTitleVI),
	"description_en":   parseAs(VideoDescriptionEN),
	"description_vi":   parseAs(VideoDescriptionVI),
	"video_url":        parseAs(VideoURL),
	"quiz_url":         parseAs(VideoQuizURL),
	"duration_minutes": parseAs(VideoDurationMinutes),
	"points_reward":    parseAs(VideoPointsReward),
	"sort_order":       parseAs(VideoSortOrder),
	"is_active":        parseAs(VideoIsActive),
}

// ParseCourseEdit turns a wire field name and its JSON value into a typed edit.
func ParseCourseEdit(field string, raw []byte) (CourseEdit, error) {
	return parseEdit(courseFields, field, raw)
}

func ParseSectionEdit(field string, raw []byte) (SectionEdit, error) {
	return parseEdit(sectionFields, field, raw)
}

func ParseVideoEdit(field string, raw []byte) (VideoEdit, error) {
	return parseEdit(videoFields, field, raw)
}

func parseEdit[E any](table map[string]fieldParser[E], field string, raw []byte) (E, error) {
	var zero E
	parse, ok := table[field]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if len(raw) == 0 {
		return zero, fmt.Errorf("%w for %s: missing value", ErrInvalidValue, field)
	}
	edit, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%w for %s: %v", ErrInvalidValue, field, err)
	}
	return edit, nil
}
