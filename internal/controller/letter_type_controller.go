package controller

import (
	"letter-drafting-be/internal/pkg/serverutils"
	"letter-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILetterTypeController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type letterTypeController struct {
	service service.ILetterTypeService
}

func NewLetterTypeController(service service.ILetterTypeService) ILetterTypeController {
	return &letterTypeController{service: service}
}

func (c *letterTypeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/letter-type/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
}

func (c *letterTypeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all letter types", res))
}

func (c *letterTypeController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid letter type id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("letter type %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show letter type", res))
}
