package dto

import (
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada del formulario en modo creación. Todos los
// campos son obligatorios.
type CreateCategoryRequest struct {
	BottomThreshold *decimal.Decimal `json:"bottom_threshold" validate:"required"`
	TopThreshold    *decimal.Decimal `json:"top_threshold" validate:"required"`
	PortionSize     *string          `json:"portion_size" validate:"required"`
	Company         *string          `json:"company" validate:"required"`
	SalesPrice      *decimal.Decimal `json:"sales_price" validate:"required"`
}

// UpdateCategoryRequest entrada del formulario en modo edición (parcial).
type UpdateCategoryRequest struct {
	BottomThreshold *decimal.Decimal `json:"bottom_threshold"`
	TopThreshold    *decimal.Decimal `json:"top_threshold"`
	PortionSize     *string          `json:"portion_size"`
	Company         *string          `json:"company"`
	SalesPrice      *decimal.Decimal `json:"sales_price"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID              int64           `json:"id"`
	BottomThreshold decimal.Decimal `json:"bottom_threshold"`
	TopThreshold    decimal.Decimal `json:"top_threshold"`
	PortionSize     string          `json:"portion_size"`
	Company         string          `json:"company"`
	SalesPrice      decimal.Decimal `json:"sales_price"`
}

// CategoryListResponse colección completa y modo del formulario.
// EditingID es nil en modo creación.
type CategoryListResponse struct {
	Items     []CategoryResponse `json:"items"`
	EditingID *int64             `json:"editing_id"`
	Total     int                `json:"total"`
}

// CategoryMutationResponse resultado de alta, edición o borrado.
type CategoryMutationResponse struct {
	Category *CategoryResponse `json:"category,omitempty"`
	Notice   Notice            `json:"notice"`
}

// EditFormResponse valores para precargar el formulario de edición.
type EditFormResponse struct {
	EditingID int64            `json:"editing_id"`
	Form      CategoryResponse `json:"form"`
}

// CategoryOptionsResponse opciones de los selectores del formulario.
type CategoryOptionsResponse struct {
	PortionSizes []string `json:"portion_sizes"`
	Companies    []string `json:"companies"`
}
