package controller

import (
	"github.com/gofiber/fiber/v2"

	"doc-qa-be/internal/pkg/apperror"
	"doc-qa-be/internal/pkg/serverutils"
	"doc-qa-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Load(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("", c.List)
	h.Post("/upload", c.Upload)
	h.Get("/current", c.Current)
	h.Get("/:id/status", c.Status)
	h.Post("/:id/load", c.Load)
	h.Delete("/:id", c.Delete)
}

func (c *sessionController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return apperror.Wrap(apperror.KindBadRequest, "no files provided", err)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return apperror.New(apperror.KindBadRequest, "no files provided")
	}

	res, err := c.service.CreateFromUpload(ctx.Context(), files)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Upload accepted, indexing started", res))
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session status", res))
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Load(ctx *fiber.Ctx) error {
	res, err := c.service.Load(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Index loaded successfully", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *sessionController) Current(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get current session", c.service.Current(ctx.Context())))
}
