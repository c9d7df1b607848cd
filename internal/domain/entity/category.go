package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category representa un tramo de precio: rango de umbrales asociado a un
// tamaño de porción, un proveedor y un precio de venta.
type Category struct {
	ID              int64
	BottomThreshold decimal.Decimal // límite inferior del rango
	TopThreshold    decimal.Decimal // límite superior; no se exige TopThreshold >= BottomThreshold
	PortionSize     string          // uno de PortionSizes()
	Company         string          // uno de Companies()
	SalesPrice      decimal.Decimal
}

// CategoryFields valores opcionales de una categoría (sin ID).
// Un campo nil significa "no informado".
type CategoryFields struct {
	BottomThreshold *decimal.Decimal
	TopThreshold    *decimal.Decimal
	PortionSize     *string
	Company         *string
	SalesPrice      *decimal.Decimal
}

// Apply copia sobre la categoría los campos presentes en f. El ID nunca cambia.
func (c *Category) Apply(f CategoryFields) {
	if f.BottomThreshold != nil {
		c.BottomThreshold = *f.BottomThreshold
	}
	if f.TopThreshold != nil {
		c.TopThreshold = *f.TopThreshold
	}
	if f.PortionSize != nil {
		c.PortionSize = *f.PortionSize
	}
	if f.Company != nil {
		c.Company = *f.Company
	}
	if f.SalesPrice != nil {
		c.SalesPrice = *f.SalesPrice
	}
}

// Fields devuelve todos los campos de la categoría como CategoryFields.
func (c Category) Fields() CategoryFields {
	return CategoryFields{
		BottomThreshold: &c.BottomThreshold,
		TopThreshold:    &c.TopThreshold,
		PortionSize:     &c.PortionSize,
		Company:         &c.Company,
		SalesPrice:      &c.SalesPrice,
	}
}

// PortionSizeCount cantidad de tamaños de porción ("size 1".."size 6").
const PortionSizeCount = 6

// PortionSize devuelve la etiqueta del tamaño n (1-based).
func PortionSize(n int) string {
	return fmt.Sprintf("size %d", n)
}

// PortionSizes lista fija de tamaños de porción ofrecidos en el formulario.
func PortionSizes() []string {
	out := make([]string, 0, PortionSizeCount)
	for i := 1; i <= PortionSizeCount; i++ {
		out = append(out, PortionSize(i))
	}
	return out
}

// Proveedores disponibles.
const (
	CompanyAdamMattkasse = "Adam Mattkasse"
	CompanyGodlevert     = "Godlevert"
	CompanyLinas         = "Linas"
)

// Companies lista fija de proveedores ofrecidos en el formulario.
func Companies() []string {
	return []string{CompanyAdamMattkasse, CompanyGodlevert, CompanyLinas}
}
