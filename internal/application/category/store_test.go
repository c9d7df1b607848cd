package category_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/category-admin/internal/application/category"
	"github.com/jhoicas/category-admin/internal/domain"
	"github.com/jhoicas/category-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func str(s string) *string { return &s }

// linasOne es la categoría {id:1, 0..100, size 1, Linas, 50}.
func linasOne() entity.Category {
	return entity.Category{
		ID:              1,
		BottomThreshold: decimal.NewFromInt(0),
		TopThreshold:    decimal.NewFromInt(100),
		PortionSize:     "size 1",
		Company:         entity.CompanyLinas,
		SalesPrice:      decimal.NewFromInt(50),
	}
}

func godlevertFields() entity.CategoryFields {
	return entity.CategoryFields{
		BottomThreshold: dec(10),
		TopThreshold:    dec(200),
		PortionSize:     str("size 2"),
		Company:         str(entity.CompanyGodlevert),
		SalesPrice:      dec(75),
	}
}

func assertSameCategory(t *testing.T, want, got entity.Category) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.BottomThreshold.Equal(got.BottomThreshold), "bottom: %s != %s", want.BottomThreshold, got.BottomThreshold)
	assert.True(t, want.TopThreshold.Equal(got.TopThreshold), "top: %s != %s", want.TopThreshold, got.TopThreshold)
	assert.Equal(t, want.PortionSize, got.PortionSize)
	assert.Equal(t, want.Company, got.Company)
	assert.True(t, want.SalesPrice.Equal(got.SalesPrice), "price: %s != %s", want.SalesPrice, got.SalesPrice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_AsignaMinMenosUnoYAntepone(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})

	created := s.Add(godlevertFields())

	assert.Equal(t, int64(0), created.ID)
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(0), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	assert.Equal(t, entity.CompanyGodlevert, list[0].Company)
	assert.True(t, list[0].SalesPrice.Equal(decimal.NewFromInt(75)))
}

func TestAdd_ColeccionVaciaUsaIDPorDefecto(t *testing.T) {
	s := category.NewStore(nil)

	first := s.Add(godlevertFields())
	second := s.Add(godlevertFields())

	assert.Equal(t, category.EmptyStoreID, first.ID)
	assert.Equal(t, category.EmptyStoreID-1, second.ID)
}

func TestAdd_IDsUnicosYDecrecientes(t *testing.T) {
	s := category.NewStore(category.GenerateSeed(category.NewRand(7), category.DefaultSeedCount))

	seen := map[int64]bool{}
	for _, c := range s.List() {
		seen[c.ID] = true
	}
	for i := 0; i < 20; i++ {
		minBefore := s.List()[0].ID
		for _, c := range s.List() {
			if c.ID < minBefore {
				minBefore = c.ID
			}
		}
		created := s.Add(godlevertFields())
		assert.Less(t, created.ID, minBefore)
		assert.False(t, seen[created.ID], "id %d repetido", created.ID)
		seen[created.ID] = true
	}
}

func TestAdd_IgnoraEdicionPendiente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	s.Add(godlevertFields())

	id, ok := s.PendingEdit()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
	got, err := s.Get(1)
	require.NoError(t, err)
	assertSameCategory(t, linasOne(), got)
}

// ──────────────────────────────────────────────────────────────────────────────
// BeginEdit / Update / CancelEdit
// ──────────────────────────────────────────────────────────────────────────────

func TestBeginEdit_DevuelveCopia(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})

	got, err := s.BeginEdit(1)
	require.NoError(t, err)
	assertSameCategory(t, linasOne(), got)

	got.Company = entity.CompanyGodlevert
	stored, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyLinas, stored.Company, "la copia no debe alias el registro")
}

func TestBeginEdit_IDInexistente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})

	_, err := s.BeginEdit(42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, ok := s.PendingEdit()
	assert.False(t, ok)
	require.Len(t, s.List(), 1)
	assertSameCategory(t, linasOne(), s.List()[0])
}

func TestBeginEdit_UltimaLlamadaGana(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	other := s.Add(godlevertFields())

	_, err := s.BeginEdit(1)
	require.NoError(t, err)
	_, err = s.BeginEdit(other.ID)
	require.NoError(t, err)

	id, ok := s.PendingEdit()
	assert.True(t, ok)
	assert.Equal(t, other.ID, id)
}

func TestUpdate_FusionaCamposYLimpiaPendiente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	updated, err := s.Update(entity.CategoryFields{SalesPrice: dec(99)})
	require.NoError(t, err)

	want := linasOne()
	want.SalesPrice = decimal.NewFromInt(99)
	assertSameCategory(t, want, updated)

	list := s.List()
	require.Len(t, list, 1)
	assertSameCategory(t, want, list[0])

	_, ok := s.PendingEdit()
	assert.False(t, ok, "la edición pendiente debe limpiarse tras guardar")
}

func TestUpdate_SinEdicionPendiente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})

	_, err := s.Update(entity.CategoryFields{SalesPrice: dec(99)})

	assert.ErrorIs(t, err, domain.ErrNoPendingEdit)
	require.Len(t, s.List(), 1)
	assertSameCategory(t, linasOne(), s.List()[0])
}

func TestCancelEdit(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	s.CancelEdit()
	s.CancelEdit()

	_, ok := s.PendingEdit()
	assert.False(t, ok)
	_, err = s.Update(entity.CategoryFields{SalesPrice: dec(1)})
	assert.ErrorIs(t, err, domain.ErrNoPendingEdit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_EliminaDeLaLista(t *testing.T) {
	s := category.NewStore(category.GenerateSeed(category.NewRand(3), category.DefaultSeedCount))

	require.NoError(t, s.Remove(2))

	assert.Len(t, s.List(), category.DefaultSeedCount-1)
	for _, c := range s.List() {
		assert.NotEqual(t, int64(2), c.ID)
	}
	assert.ErrorIs(t, s.Remove(2), domain.ErrNotFound)
}

func TestRemove_CategoriaEnEdicionLimpiaPendiente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	require.NoError(t, s.Remove(1))

	_, ok := s.PendingEdit()
	assert.False(t, ok)
	_, err = s.Update(entity.CategoryFields{SalesPrice: dec(99)})
	assert.ErrorIs(t, err, domain.ErrNoPendingEdit)
	assert.Empty(t, s.List())
}

func TestRemove_OtraCategoriaConservaPendiente(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})
	other := s.Add(godlevertFields())
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	require.NoError(t, s.Remove(other.ID))

	id, ok := s.PendingEdit()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestList_DevuelveCopia(t *testing.T) {
	s := category.NewStore([]entity.Category{linasOne()})

	list := s.List()
	list[0].ID = 99

	_, err := s.Get(1)
	assert.NoError(t, err)
}

func TestNewStore_DescartaIDsDuplicados(t *testing.T) {
	dup := linasOne()
	dup.Company = entity.CompanyGodlevert

	s := category.NewStore([]entity.Category{linasOne(), dup})

	require.Equal(t, 1, s.Len())
	assert.Equal(t, entity.CompanyLinas, s.List()[0].Company)
}
