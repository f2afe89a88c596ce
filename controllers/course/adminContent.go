package controllers

import (
	"fomo/editor"
	validators "fomo/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminAddVideo appends an empty video to the section at :section
func (dc *DraftController) AdminAddVideo(c *fiber.Ctx) error {
	sectionIndex := c.Locals("sectionIndex").(int)
	return dc.editWithStatus(c, fiber.StatusCreated, "Video added successfully!", func(ed *editor.Editor) error {
		_, err := ed.AddVideo(sectionIndex)
		return err
	})
}

func (dc *DraftController) AdminUpdateVideo(c *fiber.Ctx) error {
	sectionIndex := c.Locals("sectionIndex").(int)
	videoIndex := c.Locals("videoIndex").(int)
	reqData := c.Locals("fieldUpdate").(*validators.FieldUpdateRequest)

	edit, err := editor.ParseVideoEdit(reqData.Field, reqData.Value)
	if err != nil {
		return editFailure(c, err)
	}
	return dc.edit(c, "Video updated successfully!", func(ed *editor.Editor) error {
		return ed.UpdateVideo(sectionIndex, videoIndex, edit)
	})
}

func (dc *DraftController) AdminRemoveVideo(c *fiber.Ctx) error {
	sectionIndex := c.Locals("sectionIndex").(int)
	videoIndex := c.Locals("videoIndex").(int)
	return dc.edit(c, "Video removed successfully!", func(ed *editor.Editor) error {
		return ed.RemoveVideo(sectionIndex, videoIndex)
	})
}
