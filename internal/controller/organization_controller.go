package controller

import (
	"letter-drafting-be/internal/pkg/serverutils"
	"letter-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrganizationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type organizationController struct {
	service service.IOrganizationService
}

func NewOrganizationController(service service.IOrganizationService) IOrganizationController {
	return &organizationController{service: service}
}

func (c *organizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/organization/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
}

func (c *organizationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all organizations", res))
}

func (c *organizationController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid organization id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("organization %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show organization", res))
}
