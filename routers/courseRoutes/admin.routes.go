package courseRoutes

import (
	controllers "fomo/controllers/course"
	"fomo/middleware"
	validators "fomo/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the course-draft editing routes
func SetupAdminCourseRoutes(app *fiber.App, dc *controllers.DraftController, jwtSecret string) {
	auth := middleware.AdminJWT(jwtSecret)

	draftGroup := app.Group("/admin/course-drafts", auth)

	// Draft lifecycle
	draftGroup.Post("/", validators.CreateDraft(), dc.AdminCreateDraft)
	draftGroup.Get("/", dc.AdminListDrafts)
	draftGroup.Get("/:id", validators.DraftID(), dc.AdminGetDraft)
	draftGroup.Delete("/:id", validators.DraftID(), dc.AdminDiscardDraft)
	draftGroup.Patch("/:id", validators.DraftID(), validators.FieldUpdate(), dc.AdminUpdateCourseField)
	draftGroup.Post("/:id/submit", validators.DraftID(), dc.AdminSubmitDraft)

	// Sections
	draftGroup.Post("/:id/sections", validators.DraftID(), dc.AdminAddSection)
	draftGroup.Patch("/:id/sections/:section", validators.DraftID(), validators.SectionIndex(), validators.FieldUpdate(), dc.AdminUpdateSection)
	draftGroup.Delete("/:id/sections/:section", validators.DraftID(), validators.SectionIndex(), dc.AdminRemoveSection)

	// Videos
	draftGroup.Post("/:id/sections/:section/videos", validators.DraftID(), validators.SectionIndex(), dc.AdminAddVideo)
	draftGroup.Patch("/:id/sections/:section/videos/:video", validators.DraftID(), validators.SectionIndex(), validators.VideoIndex(), validators.FieldUpdate(), dc.AdminUpdateVideo)
	draftGroup.Delete("/:id/sections/:section/videos/:video", validators.DraftID(), validators.SectionIndex(), validators.VideoIndex(), dc.AdminRemoveVideo)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", auth)
	dashGroup.Get("/submissions", dc.AdminSubmissionStats)
}
