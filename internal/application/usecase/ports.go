package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/category-admin/internal/domain/entity"
)

// CategoryPDFGenerator puerto para exportar la tabla de categorías a PDF.
type CategoryPDFGenerator interface {
	GenerateCategoriesPDF(ctx context.Context, categories []entity.Category, generatedAt time.Time) ([]byte, error)
}
