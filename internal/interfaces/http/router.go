package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/category-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	h := NewCategoryHandler(deps.CategoryUC)

	// Rutas fijas antes de /:id
	categories.Get("/", h.List)
	categories.Get("/options", h.Options)
	categories.Get("/export.pdf", h.ExportPDF)
	categories.Post("/", h.Create)

	categories.Get("/edit", h.CurrentEdit)
	categories.Put("/edit", h.Save)
	categories.Delete("/edit", h.CancelEdit)

	categories.Post("/:id/edit", h.BeginEdit)
	categories.Delete("/:id", h.Delete)
}
