package handler

import (
	"github.com/gofiber/fiber/v2"

	"docvision/internal/model"
	"docvision/internal/service"
)

// ExtractDocument godoc
// @Summary Extract document fields
// @Description Sends the document image to the inference backend with the instruction for its type and returns the extracted fields plus imagem_original.
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body model.ExtractionRequest true "Document image and type"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorPayload
// @Failure 405 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /extract [post]
func ExtractDocument(svc service.ExtractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ExtractionRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "Corpo da requisição inválido")
		}

		res, err := svc.Extract(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, extractMessages, err)
		}
		return c.JSON(res)
	}
}

// decodeBody reads a JSON body with the app's configured decoder. An empty body
// decodes to the zero value so that missing fields are reported by the service.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, v)
}
