package category

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/category-admin/internal/domain/entity"
)

// DefaultSeedCount cantidad de categorías de demostración.
const DefaultSeedCount = 11

// seedIDOffset desplaza los IDs iniciales para que el primero sea -3.
const seedIDOffset = 3

// GenerateSeed produce n categorías de demostración con valores aleatorios:
// IDs consecutivos desde -3, umbral inferior en [0,1000), superior en
// [1000,2000) y precio en [50,550).
func GenerateSeed(r *rand.Rand, n int) []entity.Category {
	if n < 0 {
		n = 0
	}
	sizes := entity.PortionSizes()
	companies := entity.Companies()
	out := make([]entity.Category, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Category{
			ID:              int64(i - seedIDOffset),
			BottomThreshold: decimal.NewFromInt(r.Int64N(1000)),
			TopThreshold:    decimal.NewFromInt(r.Int64N(1000) + 1000),
			PortionSize:     sizes[r.IntN(len(sizes))],
			Company:         companies[r.IntN(len(companies))],
			SalesPrice:      decimal.NewFromInt(r.Int64N(500) + 50),
		})
	}
	return out
}

// NewRand devuelve una fuente aleatoria. Con seed 0 se usa una semilla no
// determinista.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
