package controllers

import (
	"fomo/editor"
	validators "fomo/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminAddSection appends an empty section to the draft
func (dc *DraftController) AdminAddSection(c *fiber.Ctx) error {
	return dc.editWithStatus(c, fiber.StatusCreated, "Section added successfully!", func(ed *editor.Editor) error {
		_, err := ed.AddSection()
		return err
	})
}

// AdminUpdateSection sets one field of the section at :section
func (dc *DraftController) AdminUpdateSection(c *fiber.Ctx) error {
	sectionIndex := c.Locals("sectionIndex").(int)
	reqData := c.Locals("fieldUpdate").(*validators.FieldUpdateRequest)

	edit, err := editor.ParseSectionEdit(reqData.Field, reqData.Value)
	if err != nil {
		return editFailure(c, err)
	}
	return dc.edit(c, "Section updated successfully!", func(ed *editor.Editor) error {
		return ed.UpdateSection(sectionIndex, edit)
	})
}

// AdminRemoveSection deletes the section at :section along with its videos.
// The remaining sections keep their sort_order.
func (dc *DraftController) AdminRemoveSection(c *fiber.Ctx) error {
	sectionIndex := c.Locals("sectionIndex").(int)
	return dc.edit(c, "Section removed successfully!", func(ed *editor.Editor) error {
		return ed.RemoveSection(sectionIndex)
	})
}
