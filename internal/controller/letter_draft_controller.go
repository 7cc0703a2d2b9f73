package controller

import (
	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/pkg/serverutils"
	"letter-drafting-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILetterDraftController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Hydrate(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type letterDraftController struct {
	service          service.ILetterDraftService
	hydrationService service.IHydrationService
}

func NewLetterDraftController(
	service service.ILetterDraftService,
	hydrationService service.IHydrationService,
) ILetterDraftController {
	return &letterDraftController{
		service:          service,
		hydrationService: hydrationService,
	}
}

func (c *letterDraftController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/letter-draft/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Save)
	h.Delete(":id", c.Delete)
	h.Post(":id/hydrate", c.Hydrate)
	h.Get(":id/preview", c.Preview)
}

func (c *letterDraftController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all letter drafts", res))
}

func (c *letterDraftController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLetterDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create letter draft", res))
}

func (c *letterDraftController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid draft id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("letter draft %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show letter draft", res))
}

func (c *letterDraftController) Save(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid draft id")
	}

	var req dto.SaveLetterDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("letter draft %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save letter draft", res))
}

func (c *letterDraftController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid draft id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete letter draft", nil))
}

func (c *letterDraftController) Hydrate(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid draft id")
	}

	var req dto.HydrateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DraftId = id

	res, err := c.hydrationService.Hydrate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("letter draft %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success hydrate letter draft", res))
}

func (c *letterDraftController) Preview(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid draft id")
	}

	res, err := c.hydrationService.GetPreview(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NotFound("letter draft %s not found", id)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get letter draft preview", res))
}
