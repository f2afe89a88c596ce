package courseValidator

import (
	"encoding/json"
	"fomo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateDraftRequest is the optional body of a new-draft request. A course id
// hydrates the draft from the backend.
type CreateDraftRequest struct {
	CourseID string `json:"course_id"`
}

// FieldUpdateRequest sets one field; the value is decoded later with the
// field's own type.
type FieldUpdateRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// CreateDraft validates a new-draft request
func CreateDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDraftRequest)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)

		c.Locals("validatedDraft", reqData)
		return c.Next()
	}
}

// DraftID validates the :id path parameter
func DraftID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Draft ID is required!", nil)
		}

		draftID, err := uuid.Parse(idStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Draft ID!", nil)
		}

		c.Locals("draftID", draftID)
		return c.Next()
	}
}

// SectionIndex validates the :section path parameter
func SectionIndex() fiber.Handler {
	return indexParam("section", "sectionIndex", "Invalid section index!")
}

// VideoIndex validates the :video path parameter
func VideoIndex() fiber.Handler {
	return indexParam("video", "videoIndex", "Invalid video index!")
}

func indexParam(param, local, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(strings.TrimSpace(c.Params(param)))
		if err != nil || index < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
		}

		c.Locals(local, index)
		return c.Next()
	}
}

// FieldUpdate validates a {field, value} body
func FieldUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FieldUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Field = strings.TrimSpace(reqData.Field)
		if reqData.Field == "" {
			errors["field"] = "Field is required!"
		}
		if len(reqData.Value) == 0 {
			errors["value"] = "Value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("fieldUpdate", reqData)
		return c.Next()
	}
}
