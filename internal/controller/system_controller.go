package controller

import (
	"github.com/gofiber/fiber/v2"

	"doc-qa-be/internal/pkg/serverutils"
	"doc-qa-be/internal/service"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type systemController struct {
	service service.ISystemService
}

func NewSystemController(service service.ISystemService) ISystemController {
	return &systemController{service: service}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/system/v1")
	h.Get("/status", c.Status)
	h.Get("/health", c.Health)
}

func (c *systemController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get system status", c.service.Status(ctx.Context())))
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success health check", c.service.Health(ctx.Context())))
}
