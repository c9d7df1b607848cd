package http

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/category-admin/internal/application/dto"
	"github.com/jhoicas/category-admin/internal/application/usecase"
	"github.com/jhoicas/category-admin/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP del panel de categorías.
type CategoryHandler struct {
	uc       *usecase.CategoryUseCase
	validate *validator.Validate
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, validate: validator.New()}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Options godoc
// @Summary      Opciones de tamaño de porción y proveedor
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryOptionsResponse
// @Router       /api/categories/options [get]
func (h *CategoryHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.uc.Options())
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.Create(in))
}

// BeginEdit godoc
// @Summary      Iniciar edición de una categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.EditFormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/edit [post]
func (h *CategoryHandler) BeginEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	out, err := h.uc.BeginEdit(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CurrentEdit godoc
// @Summary      Edición en curso
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.EditFormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/edit [get]
func (h *CategoryHandler) CurrentEdit(c *fiber.Ctx) error {
	out, err := h.uc.CurrentEdit()
	if errors.Is(err, domain.ErrNoPendingEdit) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PENDING_EDIT", Message: err.Error()})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar la edición en curso
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CategoryMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/edit [put]
func (h *CategoryHandler) Save(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelEdit godoc
// @Summary      Cancelar la edición en curso
// @Tags         categories
// @Success      204
// @Router       /api/categories/edit [delete]
func (h *CategoryHandler) CancelEdit(c *fiber.Ctx) error {
	h.uc.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryMutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar categorías a PDF
// @Tags         categories
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/export.pdf [get]
func (h *CategoryHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNoPendingEdit):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PENDING_EDIT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// validationMessage lista los campos obligatorios ausentes.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fe.Field() + " es requerido"
	}
	return msg
}
