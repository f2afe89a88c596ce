package controllers

import (
	"fomo/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

const recentSubmissions = 10

// AdminSubmissionStats reports submit outcomes and the latest attempts
func (dc *DraftController) AdminSubmissionStats(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := dc.Submissions.Stats(c.UserContext(), time.Now())
	if err != nil {
		dc.Log.Error("submission stats failed", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	recent, err := dc.Submissions.Recent(c.UserContext(), recentSubmissions)
	if err != nil {
		dc.Log.Error("recent submissions failed", "error", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"submissions": stats,
		"open_drafts": dc.Drafts.Len(),
		"recent":      recent,
	})
}
