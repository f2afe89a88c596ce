package editor

import (
	"context"
	"errors"
	"fomo/models/course"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op      string
	id      string
	payload course.Course
}

type fakeGateway struct {
	calls []call
	err   error
}

func (g *fakeGateway) record(op, id string, payload course.Course) (*course.Record, error) {
	g.calls = append(g.calls, call{op: op, id: id, payload: payload})
	if g.err != nil {
		return nil, g.err
	}
	if id == "" {
		id = "c-1"
	}
	return &course.Record{ID: course.ID(id), Course: payload}, nil
}

func (g *fakeGateway) CreateCourse(_ context.Context, p course.Course) (*course.Record, error) {
	return g.record(course.OperationCreate, "", p)
}

func (g *fakeGateway) CreateCourseWithContent(_ context.Context, p course.Course) (*course.Record, error) {
	return g.record(course.OperationCreateWithContent, "", p)
}

func (g *fakeGateway) UpdateCourse(_ context.Context, id string, p course.Course) (*course.Record, error) {
	return g.record(course.OperationUpdate, id, p)
}

func validEditor() *Editor {
	e := New()
	e.UpdateCourse(CourseTitleEN("IELTS Foundation"))
	e.UpdateCourse(CourseTitleVI("IELTS Nền tảng"))
	e.UpdateCourse(CoursePriceUSD(49))
	e.UpdateCourse(CoursePriceVND(1200000))
	return e
}

func TestNewDraftDefaults(t *testing.T) {
	e := New()
	d := e.Snapshot()
	assert.True(t, d.IsActive)
	assert.Empty(t, d.Sections)
	assert.Equal(t, StatusEditing, e.Status())
	assert.Empty(t, e.CourseID())
}

func TestAddSection(t *testing.T) {
	e := New()
	first, err := e.AddSection()
	require.NoError(t, err)
	second, err := e.AddSection()
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	d := e.Snapshot()
	require.Len(t, d.Sections, 2)
	for i, s := range d.Sections {
		assert.Equal(t, i+1, s.SortOrder)
		assert.True(t, s.IsActive)
		assert.Empty(t, s.TitleEN)
		assert.NotNil(t, s.Videos)
		assert.Empty(t, s.Videos)
	}
}

func TestAddRemoveSectionCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New()
	want := 0
	for i := 0; i < 200; i++ {
		if want > 0 && rng.Intn(3) == 0 {
			require.NoError(t, e.RemoveSection(rng.Intn(want)))
			want--
			continue
		}
		e.AddSection()
		want++
	}
	d := e.Snapshot()
	assert.Len(t, d.Sections, want)
	for _, s := range d.Sections {
		assert.Empty(t, s.Videos)
	}
}

func TestRemoveSectionKeepsSortOrder(t *testing.T) {
	e := New()
	e.AddSection()
	e.AddSection()
	e.AddSection()
	require.NoError(t, e.RemoveSection(0))

	d := e.Snapshot()
	require.Len(t, d.Sections, 2)
	assert.Equal(t, 2, d.Sections[0].SortOrder)
	assert.Equal(t, 3, d.Sections[1].SortOrder)
}

func TestRemoveSectionDiscardsVideos(t *testing.T) {
	e := New()
	e.AddSection()
	e.AddSection()
	_, err := e.AddVideo(0)
	require.NoError(t, err)
	require.NoError(t, e.UpdateSection(1, SectionTitleEN("Speaking")))

	require.NoError(t, e.RemoveSection(0))
	d := e.Snapshot()
	require.Len(t, d.Sections, 1)
	assert.Equal(t, "Speaking", d.Sections[0].TitleEN)
	assert.Empty(t, d.Sections[0].Videos)
}

func TestSectionIndexOutOfRange(t *testing.T) {
	e := New()
	e.AddSection()

	assert.ErrorIs(t, e.UpdateSection(1, SectionTitleEN("x")), ErrSectionNotFound)
	assert.ErrorIs(t, e.UpdateSection(-1, SectionTitleEN("x")), ErrSectionNotFound)
	assert.ErrorIs(t, e.RemoveSection(5), ErrSectionNotFound)
	_, err := e.AddVideo(3)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.Equal(t, 1, e.SectionCount())
}

func TestAddVideoOnlyTouchesItsSection(t *testing.T) {
	e := New()
	e.AddSection()
	e.AddSection()
	e.AddSection()

	idx, err := e.AddVideo(1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	idx, err = e.AddVideo(1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	d := e.Snapshot()
	assert.Empty(t, d.Sections[0].Videos)
	assert.Empty(t, d.Sections[2].Videos)
	require.Len(t, d.Sections[1].Videos, 2)
	assert.Equal(t, 1, d.Sections[1].Videos[0].SortOrder)
	assert.Equal(t, 2, d.Sections[1].Videos[1].SortOrder)
	assert.True(t, d.Sections[1].Videos[1].IsActive)
}

func TestUpdateAndRemoveVideo(t *testing.T) {
	e := New()
	e.AddSection()
	_, _ = e.AddVideo(0)
	_, _ = e.AddVideo(0)

	require.NoError(t, e.UpdateVideo(0, 1, VideoURL("https://youtu.be/abc")))
	require.NoError(t, e.UpdateVideo(0, 1, VideoPointsReward(15)))
	require.NoError(t, e.RemoveVideo(0, 0))

	d := e.Snapshot()
	require.Len(t, d.Sections[0].Videos, 1)
	v := d.Sections[0].Videos[0]
	assert.Equal(t, "https://youtu.be/abc", v.VideoURL)
	assert.Equal(t, 15, v.PointsReward)
	assert.Equal(t, 2, v.SortOrder)

	assert.ErrorIs(t, e.UpdateVideo(0, 1, VideoURL("x")), ErrVideoNotFound)
	assert.ErrorIs(t, e.RemoveVideo(0, -1), ErrVideoNotFound)
	assert.ErrorIs(t, e.RemoveVideo(2, 0), ErrSectionNotFound)
}

func TestSnapshotIsDetached(t *testing.T) {
	e := New()
	e.AddSection()
	_, _ = e.AddVideo(0)

	d := e.Snapshot()
	d.Sections[0].Videos[0].TitleEN = "mutated"
	d.Sections = append(d.Sections, course.Section{})

	again := e.Snapshot()
	assert.Len(t, again.Sections, 1)
	assert.Empty(t, again.Sections[0].Videos[0].TitleEN)
}

func TestFromCourseHydrates(t *testing.T) {
	price := 99.0
	src := course.Course{
		TitleEN:          "Grammar",
		OriginalPriceUSD: &price,
		Sections:         []course.Section{{TitleEN: "Tenses", SortOrder: 4}},
	}
	e := FromCourse("42", src)
	assert.Equal(t, "42", e.CourseID())

	d := e.Snapshot()
	require.Len(t, d.Sections, 1)
	assert.NotNil(t, d.Sections[0].Videos)

	*src.OriginalPriceUSD = 1
	assert.Equal(t, 99.0, *e.Snapshot().OriginalPriceUSD)

	idx, err := e.AddVideo(0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestSubmitDerivesTotalVideos(t *testing.T) {
	gw := &fakeGateway{}
	e := validEditor()
	e.UpdateCourse(CourseTotalVideos(99))
	e.AddSection()
	_, _ = e.AddVideo(0)
	_, _ = e.AddVideo(0)

	rec, err := e.Submit(context.Background(), gw)
	require.NoError(t, err)
	assert.Equal(t, course.ID("c-1"), rec.ID)

	require.Len(t, gw.calls, 1)
	got := gw.calls[0]
	assert.Equal(t, course.OperationCreateWithContent, got.op)
	require.Len(t, got.payload.Sections, 1)
	assert.Len(t, got.payload.Sections[0].Videos, 2)
	assert.Equal(t, 2, got.payload.TotalVideos)
	assert.Equal(t, StatusSubmitted, e.Status())
	assert.Equal(t, "c-1", e.CourseID())
}

func TestSubmitTotalVideosAcrossSections(t *testing.T) {
	gw := &fakeGateway{}
	e := validEditor()
	for i := 0; i < 3; i++ {
		e.AddSection()
		for j := 0; j <= i; j++ {
			_, _ = e.AddVideo(i)
		}
	}
	_, err := e.Submit(context.Background(), gw)
	require.NoError(t, err)
	assert.Equal(t, 6, gw.calls[0].payload.TotalVideos)
}

func TestSubmitWithEmptySectionsStillDerives(t *testing.T) {
	gw := &fakeGateway{}
	e := validEditor()
	e.UpdateCourse(CourseTotalVideos(12))
	e.AddSection()

	_, err := e.Submit(context.Background(), gw)
	require.NoError(t, err)
	assert.Equal(t, 0, gw.calls[0].payload.TotalVideos)
}

func TestSubmitWithoutSectionsKeepsManualTotal(t *testing.T) {
	gw := &fakeGateway{}
	e := validEditor()
	e.AddSection()
	_, _ = e.AddVideo(0)
	e.UpdateCourse(CourseTotalVideos(24))
	require.NoError(t, e.RemoveSection(0))
	assert.Equal(t, 0, e.SectionCount())

	_, err := e.Submit(context.Background(), gw)
	require.NoError(t, err)
	require.Len(t, gw.calls, 1)
	assert.Equal(t, course.OperationCreate, gw.calls[0].op)
	assert.Equal(t, 24, gw.calls[0].payload.TotalVideos)
}

func TestSubmitHydratedDraftUpdates(t *testing.T) {
	gw := &fakeGateway{}
	e := FromCourse("17", course.Course{TitleEN: "A", TitleVI: "B", PriceUSD: 1, PriceVND: 1})

	_, err := e.Submit(context.Background(), gw)
	require.NoError(t, err)
	require.Len(t, gw.calls, 1)
	assert.Equal(t, course.OperationUpdate, gw.calls[0].op)
	assert.Equal(t, "17", gw.calls[0].id)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Editor)
		fields []string
	}{
		{"missing english title", func(e *Editor) { e.UpdateCourse(CourseTitleEN("")) }, []string{"title_en"}},
		{"missing vietnamese title", func(e *Editor) { e.UpdateCourse(CourseTitleVI("")) }, []string{"title_vi"}},
		{"blank english title", func(e *Editor) { e.UpdateCourse(CourseTitleEN("   ")) }, []string{"title_en"}},
		{"blank vietnamese title", func(e *Editor) { e.UpdateCourse(CourseTitleVI("\t ")) }, []string{"title_vi"}},
		{"zero usd price", func(e *Editor) { e.UpdateCourse(CoursePriceUSD(0)) }, []string{"price_usd"}},
		{"negative vnd price", func(e *Editor) { e.UpdateCourse(CoursePriceVND(-5)) }, []string{"price_vnd"}},
		{"everything wrong", func(e *Editor) {
			e.UpdateCourse(CourseTitleEN(""))
			e.UpdateCourse(CourseTitleVI(""))
			e.UpdateCourse(CoursePriceUSD(0))
			e.UpdateCourse(CoursePriceVND(0))
		}, []string{"title_en", "title_vi", "price_usd", "price_vnd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			e := validEditor()
			e.AddSection()
			tt.mutate(e)

			_, err := e.Submit(context.Background(), gw)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.NotEmpty(t, verr.Fields[f], f)
			}
			assert.Empty(t, gw.calls)
			assert.Equal(t, StatusEditing, e.Status())
			assert.Equal(t, 1, e.SectionCount())
		})
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	boom := errors.New("backend down")
	gw := &fakeGateway{err: boom}
	e := validEditor()
	e.AddSection()
	require.NoError(t, e.UpdateSection(0, SectionTitleEN("Listening")))

	_, err := e.Submit(context.Background(), gw)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatusEditing, e.Status())
	assert.Equal(t, "Listening", e.Snapshot().Sections[0].TitleEN)

	gw.err = nil
	_, err = e.Submit(context.Background(), gw)
	require.NoError(t, err)
	assert.Len(t, gw.calls, 2)
}

func TestBeginSubmitGuards(t *testing.T) {
	e := validEditor()
	sub, err := e.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, e.Status())

	_, err = e.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	// the draft is frozen while the request is in flight
	_, err = e.AddSection()
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, e.UpdateCourse(CourseTitleEN("late")), ErrSubmitInProgress)
	assert.Empty(t, sub.Payload.Sections)
	assert.Equal(t, "IELTS Foundation", e.Snapshot().TitleEN)

	e.FinishSubmit(&course.Record{ID: "9"}, nil)
	_, err = e.BeginSubmit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	_, err = e.AddSection()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestFailedSubmitReopensEditing(t *testing.T) {
	e := validEditor()
	_, err := e.BeginSubmit()
	require.NoError(t, err)
	assert.ErrorIs(t, e.UpdateCourse(CoursePriceUSD(10)), ErrSubmitInProgress)

	e.FinishSubmit(nil, errors.New("timeout"))
	require.NoError(t, e.UpdateCourse(CoursePriceUSD(10)))
	idx, err := e.AddSection()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, float64(10), e.Snapshot().PriceUSD)
}
