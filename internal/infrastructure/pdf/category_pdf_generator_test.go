package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/category-admin/internal/application/category"
	"github.com/jhoicas/category-admin/internal/infrastructure/pdf"
)

func TestGenerateCategoriesPDF(t *testing.T) {
	g := pdf.NewMarotoCategoryPDFGenerator("category-admin")
	seed := category.GenerateSeed(category.NewRand(1), category.DefaultSeedCount)

	out, err := g.GenerateCategoriesPDF(context.Background(), seed, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe comenzar con la cabecera PDF")
}

func TestGenerateCategoriesPDF_SinCategorias(t *testing.T) {
	g := pdf.NewMarotoCategoryPDFGenerator("category-admin")

	out, err := g.GenerateCategoriesPDF(context.Background(), nil, time.Now())

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
