package handler

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"docvision/internal/model"
	"docvision/internal/prompt"
)

type healthPayload struct {
	Status          string   `json:"status"`
	TemplateVersion string   `json:"template_version"`
	Versions        []string `json:"versions"`
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service health and the instruction schema versions it serves.
// @Tags health
// @Produce json
// @Success 200 {object} healthPayload
// @Router /health [get]
func HealthCheck(registry *prompt.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(healthPayload{
			Status:          "healthy",
			TemplateVersion: registry.DefaultVersion(),
			Versions:        registry.Versions(),
		})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListDocumentTypes godoc
// @Summary List document types
// @Description Lists the document types accepted by POST /extract, per schema version. With a version path parameter only that version is listed.
// @Tags extraction
// @Produce json
// @Param version path string false "Schema version (v1, v2)"
// @Success 200 {array} model.DocumentTypeInfo
// @Failure 404 {object} errorPayload
// @Router /document-types/{version} [get]
func ListDocumentTypes(registry *prompt.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		versions := registry.Versions()
		if v := c.Params("version"); v != "" {
			if !slices.Contains(versions, v) {
				return writeError(c, fiber.StatusNotFound, "UNKNOWN_VERSION", "Versão de esquema desconhecida")
			}
			versions = []string{v}
		}

		out := make([]model.DocumentTypeInfo, 0, len(versions))
		for _, v := range versions {
			out = append(out, model.DocumentTypeInfo{
				Version: v,
				Types:   registry.DocumentTypes(v),
				Default: v == registry.DefaultVersion(),
			})
		}
		return c.JSON(out)
	}
}
