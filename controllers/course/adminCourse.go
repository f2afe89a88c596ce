package controllers

import (
	"context"
	"errors"
	"fomo/database"
	"fomo/drafts"
	"fomo/editor"
	"fomo/gateway"
	"fomo/logger"
	"fomo/middleware"
	courseModels "fomo/models/course"
	validators "fomo/validators/course"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseGateway is the slice of the backend API the course drafts use.
type CourseGateway interface {
	editor.Gateway
	GetCourse(ctx context.Context, id string) (*courseModels.Record, error)
}

// DraftController serves the admin course-draft endpoints.
type DraftController struct {
	Drafts      *drafts.Registry
	Gateway     func(token string) CourseGateway
	Submissions *database.Submissions
	Log         *logger.Logger
}

type draftView struct {
	ID       uuid.UUID           `json:"id"`
	CourseID string              `json:"course_id,omitempty"`
	Status   editor.Status       `json:"status"`
	Course   courseModels.Course `json:"course"`
}

func viewOf(id uuid.UUID, ed *editor.Editor) draftView {
	return draftView{
		ID:       id,
		CourseID: ed.CourseID(),
		Status:   ed.Status(),
		Course:   ed.Snapshot(),
	}
}

// AdminCreateDraft starts an empty draft, or hydrates one from the backend
// when a course id is given.
func (dc *DraftController) AdminCreateDraft(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedDraft").(*validators.CreateDraftRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ed := editor.New()
	if reqData.CourseID != "" {
		rec, err := dc.gatewayFor(c).GetCourse(c.UserContext(), reqData.CourseID)
		if err != nil {
			dc.Log.Warn("course fetch failed", "course_id", reqData.CourseID, "operator", userId, "error", err)
			return remoteFailure(c, err, "Failed to load course!")
		}
		courseID := string(rec.ID)
		if courseID == "" {
			courseID = reqData.CourseID
		}
		ed = editor.FromCourse(courseID, rec.Course)
	}

	draftID := dc.Drafts.Create(userId, ed)
	dc.Log.Info("course draft opened", "draft_id", draftID, "operator", userId, "course_id", ed.CourseID())

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Draft created successfully!", viewOf(draftID, ed))
}

// AdminListDrafts lists the caller's open drafts
func (dc *DraftController) AdminListDrafts(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Drafts fetched successfully!", dc.Drafts.List(userId))
}

func (dc *DraftController) AdminGetDraft(c *fiber.Ctx) error {
	return dc.edit(c, "Draft fetched successfully!", func(*editor.Editor) error { return nil })
}

// AdminDiscardDraft cancels a draft; nothing is sent to the backend.
func (dc *DraftController) AdminDiscardDraft(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	draftID := c.Locals("draftID").(uuid.UUID)

	if err := dc.Drafts.Discard(draftID, userId); err != nil {
		return editFailure(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded successfully!", nil)
}

// AdminUpdateCourseField sets one course-level field
func (dc *DraftController) AdminUpdateCourseField(c *fiber.Ctx) error {
	reqData := c.Locals("fieldUpdate").(*validators.FieldUpdateRequest)
	edit, err := editor.ParseCourseEdit(reqData.Field, reqData.Value)
	if err != nil {
		return editFailure(c, err)
	}
	return dc.edit(c, "Course updated successfully!", func(ed *editor.Editor) error {
		return ed.UpdateCourse(edit)
	})
}

// edit runs fn against the caller's draft and answers with the resulting draft.
func (dc *DraftController) edit(c *fiber.Ctx, message string, fn func(*editor.Editor) error) error {
	return dc.editWithStatus(c, fiber.StatusOK, message, fn)
}

func (dc *DraftController) editWithStatus(c *fiber.Ctx, status int, message string, fn func(*editor.Editor) error) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	draftID := c.Locals("draftID").(uuid.UUID)

	var view draftView
	err := dc.Drafts.With(draftID, userId, func(ed *editor.Editor) error {
		if err := fn(ed); err != nil {
			return err
		}
		view = viewOf(draftID, ed)
		return nil
	})
	if err != nil {
		return editFailure(c, err)
	}
	return middleware.JsonResponse(c, status, true, message, view)
}

// AdminSubmitDraft validates the draft and hands it to the backend. On
// failure the draft stays open with every edit intact.
func (dc *DraftController) AdminSubmitDraft(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	draftID := c.Locals("draftID").(uuid.UUID)
	log := dc.Log.With("draft_id", draftID, "operator", userId)

	sub, rec, err := dc.Drafts.Submit(c.UserContext(), draftID, userId, dc.gatewayFor(c))
	if sub == nil {
		// rejected before any backend call
		return editFailure(c, err)
	}

	entry := &courseModels.CourseSubmission{
		DraftID:      draftID,
		OperatorID:   userId,
		CourseID:     sub.CourseID,
		Operation:    sub.Operation,
		SectionCount: len(sub.Payload.Sections),
		TotalVideos:  sub.Payload.TotalVideos,
		Status:       courseModels.SubmissionSucceeded,
	}
	if payload, mErr := sonic.Marshal(sub.Payload); mErr == nil {
		entry.Payload = datatypes.JSON(payload)
	}
	if err != nil {
		entry.Status = courseModels.SubmissionFailed
		entry.ErrorMessage = err.Error()
	} else if rec != nil && rec.ID != "" {
		entry.CourseID = string(rec.ID)
	}
	if recErr := dc.Submissions.Record(c.UserContext(), entry); recErr != nil {
		log.Error("submission not recorded", "error", recErr)
	}

	if err != nil {
		log.Warn("course submit failed", "operation", sub.Operation, "error", err)
		return remoteFailure(c, err, "Failed to save course!")
	}

	log.Info("course submitted", "operation", sub.Operation, "course_id", entry.CourseID, "total_videos", entry.TotalVideos)
	message := "Course created successfully!"
	if sub.Operation == courseModels.OperationUpdate {
		message = "Course updated successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, rec)
}

func (dc *DraftController) gatewayFor(c *fiber.Ctx) CourseGateway {
	token, _ := c.Locals("token").(string)
	return dc.Gateway(token)
}

func editFailure(c *fiber.Ctx, err error) error {
	var verr *editor.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, drafts.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	case errors.Is(err, editor.ErrSectionNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	case errors.Is(err, editor.ErrVideoNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	case errors.Is(err, editor.ErrUnknownField), errors.Is(err, editor.ErrInvalidValue):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, editor.ErrSubmitInProgress):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission already in progress!", nil)
	case errors.Is(err, editor.ErrAlreadySubmitted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Draft already submitted!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

// remoteFailure reports a failed backend call. Every failure is treated
// the same way; the backend's message is passed through when there is one.
func remoteFailure(c *fiber.Ctx, err error, fallback string) error {
	var gerr *gateway.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, gerr.Message, nil)
	}
	return middleware.JsonResponse(c, fiber.StatusBadGateway, false, fallback, nil)
}
