// Package editor holds the in-memory draft of a course and the index-scoped
// operations an operator uses to build its section → video structure.
//
// An Editor is not safe for concurrent use; callers serialize access (see
// package drafts).
package editor

import (
	"errors"
	"fomo/models/course"
)

type Status string

const (
	StatusEditing    Status = "EDITING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSubmitted  Status = "SUBMITTED"
)

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("draft already submitted")
)

// Editor owns one course draft for its whole lifetime.
type Editor struct {
	courseID string
	draft    course.Course
	status   Status
}

// New starts an empty draft for a course that does not exist yet.
func New() *Editor {
	return &Editor{
		draft: course.Course{
			IsActive: true,
			Sections: []course.Section{},
		},
		status: StatusEditing,
	}
}

// FromCourse hydrates a draft from a course fetched from the backend.
// Submitting it updates courseID instead of creating a new course.
func FromCourse(courseID string, c course.Course) *Editor {
	draft := c.Clone()
	for i := range draft.Sections {
		if draft.Sections[i].Videos == nil {
			draft.Sections[i].Videos = []course.Video{}
		}
	}
	return &Editor{courseID: courseID, draft: draft, status: StatusEditing}
}

func (e *Editor) CourseID() string { return e.courseID }

func (e *Editor) Status() Status { return e.status }

// Snapshot returns a deep copy of the draft.
func (e *Editor) Snapshot() course.Course { return e.draft.Clone() }

func (e *Editor) SectionCount() int { return len(e.draft.Sections) }

// editable rejects changes once the draft has been handed to the backend.
func (e *Editor) editable() error {
	switch e.status {
	case StatusSubmitting:
		return ErrSubmitInProgress
	case StatusSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

// UpdateCourse applies one course-level field edit.
func (e *Editor) UpdateCourse(edit CourseEdit) error {
	if err := e.editable(); err != nil {
		return err
	}
	edit(&e.draft)
	return nil
}

// AddSection appends an empty active section and returns its index.
func (e *Editor) AddSection() (int, error) {
	if err := e.editable(); err != nil {
		return 0, err
	}
	e.draft.Sections = append(e.draft.Sections, course.Section{
		SortOrder: len(e.draft.Sections) + 1,
		IsActive:  true,
		Videos:    []course.Video{},
	})
	return len(e.draft.Sections) - 1, nil
}

func (e *Editor) UpdateSection(index int, edit SectionEdit) error {
	s, err := e.section(index)
	if err != nil {
		return err
	}
	edit(s)
	return nil
}

// RemoveSection deletes the section and every video under it. The
// remaining sections keep their sort_order values.
func (e *Editor) RemoveSection(index int) error {
	if _, err := e.section(index); err != nil {
		return err
	}
	e.draft.Sections = append(e.draft.Sections[:index], e.draft.Sections[index+1:]...)
	return nil
}

// AddVideo appends an empty active video to the section and returns its index.
func (e *Editor) AddVideo(sectionIndex int) (int, error) {
	s, err := e.section(sectionIndex)
	if err != nil {
		return 0, err
	}
	s.Videos = append(s.Videos, course.Video{
		SortOrder: len(s.Videos) + 1,
		IsActive:  true,
	})
	return len(s.Videos) - 1, nil
}

func (e *Editor) UpdateVideo(sectionIndex, videoIndex int, edit VideoEdit) error {
	v, err := e.video(sectionIndex, videoIndex)
	if err != nil {
		return err
	}
	edit(v)
	return nil
}

func (e *Editor) RemoveVideo(sectionIndex, videoIndex int) error {
	if _, err := e.video(sectionIndex, videoIndex); err != nil {
		return err
	}
	s := &e.draft.Sections[sectionIndex]
	s.Videos = append(s.Videos[:videoIndex], s.Videos[videoIndex+1:]...)
	return nil
}

func (e *Editor) section(index int) (*course.Section, error) {
	if err := e.editable(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(e.draft.Sections) {
		return nil, ErrSectionNotFound
	}
	return &e.draft.Sections[index], nil
}

func (e *Editor) video(sectionIndex, videoIndex int) (*course.Video, error) {
	s, err := e.section(sectionIndex)
	if err != nil {
		return nil, err
	}
	if videoIndex < 0 || videoIndex >= len(s.Videos) {
		return nil, ErrVideoNotFound
	}
	return &s.Videos[videoIndex], nil
}
