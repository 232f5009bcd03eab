// Package pricing computes installation prices from a fixed unit-price table.
package pricing

import "math"

type MeshType string

const (
	MeshFixed    MeshType = "fixed"
	MeshRoller   MeshType = "roller"
	MeshSlider   MeshType = "slider"
	MeshMagnetic MeshType = "magnetic"
)

type MaterialType string

const (
	MaterialFiberglass MaterialType = "fiberglass"
	MaterialPolyester  MaterialType = "polyester"
	MaterialStainless  MaterialType = "stainless"
)

// DefaultUnitPrice is charged per square meter when a combination is not in the table.
const DefaultUnitPrice = 2000.0

// Key identifies one row of the unit-price table.
type Key struct {
	Mesh     MeshType
	Material MaterialType
}

// Table maps a (mesh, material) pair to a unit price per square meter.
type Table map[Key]float64

// DefaultTable returns a fresh copy of the built-in price list.
func DefaultTable() Table {
	return Table{
		{MeshFixed, MaterialFiberglass}: 1500,
		{MeshFixed, MaterialPolyester}:  1800,
		{MeshFixed, MaterialStainless}:  2500,

		{MeshRoller, MaterialFiberglass}: 2800,
		{MeshRoller, MaterialPolyester}:  3200,
		{MeshRoller, MaterialStainless}:  4000,

		{MeshSlider, MaterialFiberglass}: 2500,
		{MeshSlider, MaterialPolyester}:  2800,
		{MeshSlider, MaterialStainless}:  3500,

		{MeshMagnetic, MaterialFiberglass}: 1200,
		{MeshMagnetic, MaterialPolyester}:  1500,
		{MeshMagnetic, MaterialStainless}:  2000,
	}
}

// Input is a single quote line: every window shares the same dimensions.
type Input struct {
	Mesh     MeshType
	Material MaterialType
	Width    float64
	Height   float64
	Count    int
}

// Calculator is safe for concurrent use; its table is never mutated after construction.
type Calculator struct {
	table        Table
	defaultPrice float64
}

func NewCalculator(table Table, defaultUnitPrice float64) *Calculator {
	cp := make(Table, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &Calculator{table: cp, defaultPrice: defaultUnitPrice}
}

// UnitPrice returns the table price for the pair, falling back to the default.
func (c *Calculator) UnitPrice(mesh MeshType, material MaterialType) float64 {
	if p, ok := c.table[Key{Mesh: mesh, Material: material}]; ok {
		return p
	}
	return c.defaultPrice
}

// Calculate returns width * height * unitPrice * count rounded to cents.
// Unknown mesh/material values are priced at the default unit price.
func (c *Calculator) Calculate(in Input) float64 {
	total := in.Width * in.Height * c.UnitPrice(in.Mesh, in.Material) * float64(in.Count)
	if total < 0 || math.IsNaN(total) {
		return 0
	}
	return math.Round(total*100) / 100
}
