package handler

import (
	"github.com/gofiber/fiber/v2"

	"docvision/internal/model"
	"docvision/internal/service"
)

// CompareFaces godoc
// @Summary Compare faces
// @Description Compares the face in a reference document photo (image1) with a live capture (image2).
// @Tags biometrics
// @Accept json
// @Produce json
// @Param request body model.ComparisonRequest true "Mode and both images"
// @Success 200 {object} model.ComparisonVerdict
// @Failure 400 {object} errorPayload
// @Failure 405 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /biometria [post]
func CompareFaces(svc service.ComparisonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ComparisonRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "Corpo da requisição inválido")
		}

		res, err := svc.Compare(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, compareMessages, err)
		}
		return c.JSON(res)
	}
}
