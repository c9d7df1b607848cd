package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/category-admin/internal/application/category"
	"github.com/jhoicas/category-admin/internal/application/dto"
	"github.com/jhoicas/category-admin/internal/domain"
	"github.com/jhoicas/category-admin/internal/domain/entity"
	"github.com/jhoicas/category-admin/pkg/logger"
)

// CategoryUseCase casos de uso del panel de categorías sobre el store en memoria.
type CategoryUseCase struct {
	store *category.Store
	pdf   CategoryPDFGenerator
	log   *logger.Logger
	now   func() time.Time
}

// NewCategoryUseCase construye el caso de uso. pdf puede ser nil si la
// exportación no está disponible.
func NewCategoryUseCase(store *category.Store, pdf CategoryPDFGenerator, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{store: store, pdf: pdf, log: log, now: time.Now}
}

// List devuelve la colección en orden y el ID en edición, si lo hay.
func (uc *CategoryUseCase) List() *dto.CategoryListResponse {
	list := uc.store.List()
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	out := &dto.CategoryListResponse{Items: items, Total: len(items)}
	if id, ok := uc.store.PendingEdit(); ok {
		out.EditingID = &id
	}
	return out
}

// Options devuelve las opciones de los selectores del formulario.
func (uc *CategoryUseCase) Options() *dto.CategoryOptionsResponse {
	return &dto.CategoryOptionsResponse{
		PortionSizes: entity.PortionSizes(),
		Companies:    entity.Companies(),
	}
}

// Create agrega una categoría al inicio de la colección.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) *dto.CategoryMutationResponse {
	c := uc.store.Add(entity.CategoryFields{
		BottomThreshold: in.BottomThreshold,
		TopThreshold:    in.TopThreshold,
		PortionSize:     in.PortionSize,
		Company:         in.Company,
		SalesPrice:      in.SalesPrice,
	})
	uc.log.Debug().Int64("category_id", c.ID).Msg("categoría creada")
	resp := toCategoryResponse(c)
	return &dto.CategoryMutationResponse{
		Category: &resp,
		Notice:   notice(dto.NoticeSuccess, "Category added", fmt.Sprintf("New category %d has been added.", c.ID)),
	}
}

// BeginEdit pasa el formulario a modo edición sobre la categoría id.
// Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) BeginEdit(id int64) (*dto.EditFormResponse, error) {
	c, err := uc.store.BeginEdit(id)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int64("category_id", id).Msg("edición iniciada")
	return &dto.EditFormResponse{EditingID: id, Form: toCategoryResponse(c)}, nil
}

// CurrentEdit devuelve el formulario de la edición pendiente.
// Devuelve domain.ErrNoPendingEdit en modo creación.
func (uc *CategoryUseCase) CurrentEdit() (*dto.EditFormResponse, error) {
	id, ok := uc.store.PendingEdit()
	if !ok {
		return nil, domain.ErrNoPendingEdit
	}
	c, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &dto.EditFormResponse{EditingID: id, Form: toCategoryResponse(c)}, nil
}

// CancelEdit vuelve a modo creación sin guardar.
func (uc *CategoryUseCase) CancelEdit() {
	uc.store.CancelEdit()
	uc.log.Debug().Msg("edición cancelada")
}

// Save guarda los cambios de la edición pendiente.
// Devuelve domain.ErrNoPendingEdit o domain.ErrNotFound.
func (uc *CategoryUseCase) Save(in dto.UpdateCategoryRequest) (*dto.CategoryMutationResponse, error) {
	c, err := uc.store.Update(entity.CategoryFields{
		BottomThreshold: in.BottomThreshold,
		TopThreshold:    in.TopThreshold,
		PortionSize:     in.PortionSize,
		Company:         in.Company,
		SalesPrice:      in.SalesPrice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn().Err(err).Msg("la categoría en edición ya no existe")
		}
		return nil, err
	}
	uc.log.Debug().Int64("category_id", c.ID).Msg("categoría actualizada")
	resp := toCategoryResponse(c)
	return &dto.CategoryMutationResponse{
		Category: &resp,
		Notice:   notice(dto.NoticeSuccess, "Category updated", fmt.Sprintf("Category %d has been updated.", c.ID)),
	}, nil
}

// Delete elimina la categoría id. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Delete(id int64) (*dto.CategoryMutationResponse, error) {
	if err := uc.store.Remove(id); err != nil {
		return nil, err
	}
	uc.log.Debug().Int64("category_id", id).Msg("categoría eliminada")
	return &dto.CategoryMutationResponse{
		Notice: notice(dto.NoticeError, "Category deleted", fmt.Sprintf("Category %d has been removed.", id)),
	}, nil
}

// ExportPDF genera el PDF de la tabla de categorías y su nombre de archivo.
func (uc *CategoryUseCase) ExportPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: exportación PDF no configurada", domain.ErrInvalidInput)
	}
	now := uc.now()
	pdfBytes, err = uc.pdf.GenerateCategoriesPDF(ctx, uc.store.List(), now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar categorías: %w", err)
	}
	return pdfBytes, fmt.Sprintf("categories_%s.pdf", now.Format("20060102_150405")), nil
}

func notice(status, title, description string) dto.Notice {
	return dto.Notice{
		Title:       title,
		Description: description,
		Status:      status,
		DurationMs:  dto.NoticeDurationMs,
		Closable:    true,
	}
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:              c.ID,
		BottomThreshold: c.BottomThreshold,
		TopThreshold:    c.TopThreshold,
		PortionSize:     c.PortionSize,
		Company:         c.Company,
		SalesPrice:      c.SalesPrice,
	}
}
