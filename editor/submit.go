package editor

import (
	"context"
	"fmt"
	"fomo/models/course"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Gateway is the backend the finished draft is handed to.
type Gateway interface {
	CreateCourse(ctx context.Context, payload course.Course) (*course.Record, error)
	CreateCourseWithContent(ctx context.Context, payload course.Course) (*course.Record, error)
	UpdateCourse(ctx context.Context, id string, payload course.Course) (*course.Record, error)
}

// ValidationError lists one message per violated rule, keyed by the wire
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(notBlankTag, notBlank)
	return v
}

const notBlankTag = "notblank"

// notBlank fails on zero values and on whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return !fl.Field().IsZero()
}

var ruleMessages = map[string]string{
	"title_en":  "English title is required!",
	"title_vi":  "Vietnamese title is required!",
	"price_usd": "USD price must be greater than 0!",
	"price_vnd": "VND price must be greater than 0!",
}

// Validate checks the rules a draft must meet before it is submitted.
func (e *Editor) Validate() error {
	err := validate.Struct(e.draft)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := ruleMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
		out.Fields[fe.Field()] = msg
	}
	return out
}

// Submission is the frozen payload of one submit attempt.
type Submission struct {
	Operation string
	CourseID  string
	Payload   course.Course
}

// Send issues exactly one gateway call for the submission's operation.
func (s *Submission) Send(ctx context.Context, gw Gateway) (*course.Record, error) {
	switch s.Operation {
	case course.OperationUpdate:
		return gw.UpdateCourse(ctx, s.CourseID, s.Payload)
	case course.OperationCreateWithContent:
		return gw.CreateCourseWithContent(ctx, s.Payload)
	default:
		return gw.CreateCourse(ctx, s.Payload)
	}
}

// BeginSubmit validates the draft, freezes the payload and marks the draft
// as submitting. Edits are refused until FinishSubmit.
func (e *Editor) BeginSubmit() (*Submission, error) {
	switch e.status {
	case StatusSubmitting:
		return nil, ErrSubmitInProgress
	case StatusSubmitted:
		return nil, ErrAlreadySubmitted
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	payload := e.draft.Clone()
	if len(payload.Sections) > 0 {
		payload.TotalVideos = payload.CountVideos()
	}

	e.status = StatusSubmitting
	return &Submission{
		Operation: chooseOperation(e.courseID, payload),
		CourseID:  e.courseID,
		Payload:   payload,
	}, nil
}

// FinishSubmit records the outcome of the gateway call. A failure returns
// the draft to editing with every local edit kept.
func (e *Editor) FinishSubmit(rec *course.Record, err error) {
	if err != nil {
		e.status = StatusEditing
		return
	}
	e.status = StatusSubmitted
	if rec != nil && rec.ID != "" {
		e.courseID = string(rec.ID)
	}
}

// Submit runs a whole submit cycle for callers that own the editor exclusively.
func (e *Editor) Submit(ctx context.Context, gw Gateway) (*course.Record, error) {
	sub, err := e.BeginSubmit()
	if err != nil {
		return nil, err
	}
	rec, err := sub.Send(ctx, gw)
	e.FinishSubmit(rec, err)
	if err != nil {
		return nil, fmt.Errorf("submit course: %w", err)
	}
	return rec, nil
}

// chooseOperation picks update for hydrated drafts, and otherwise the
// content-aware create endpoint only when the draft has sections.
func chooseOperation(courseID string, payload course.Course) string {
	switch {
	case courseID != "":
		return course.OperationUpdate
	case len(payload.Sections) > 0:
		return course.OperationCreateWithContent
	default:
		return course.OperationCreate
	}
}
