package controller

import (
	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/pkg/serverutils"
	"letter-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGrammarController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
	AcceptSuggestion(ctx *fiber.Ctx) error
}

type grammarController struct {
	service service.IGrammarService
}

func NewGrammarController(service service.IGrammarService) IGrammarController {
	return &grammarController{service: service}
}

func (c *grammarController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/grammar/v1")
	h.Post("check", c.Check)
	h.Post("accept-suggestion", c.AcceptSuggestion)
}

func (c *grammarController) Check(ctx *fiber.Ctx) error {
	var req dto.GrammarCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Check(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check grammar", res))
}

func (c *grammarController) AcceptSuggestion(ctx *fiber.Ctx) error {
	var req dto.AcceptSuggestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AcceptSuggestion(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept suggestion", res))
}
