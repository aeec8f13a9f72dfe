// Package model provides domain models for the box recommendation service.
package model

import "time"

// BoxModel is a reusable container type with fixed interior dimensions in millimeters.
//
// Frente is the front (width) axis, Profundo the depth axis and Alto the height axis.
type BoxModel struct {
	ModelID    string  `bson:"model_id" json:"modelo_id" yaml:"model_id" example:"CUBE-M"`
	Name       string  `bson:"name" json:"nombre" yaml:"name" example:"Cube medium"`
	FrenteMM   float64 `bson:"frente_mm" json:"frente_mm" yaml:"frente_mm" example:"600"`
	ProfundoMM float64 `bson:"profundo_mm" json:"profundo_mm" yaml:"profundo_mm" example:"400"`
	AltoMM     float64 `bson:"alto_mm" json:"alto_mm" yaml:"alto_mm" example:"300"`
} // @name BoxModel

// Dimensions returns the interior dimensions as (front, depth, height).
func (b BoxModel) Dimensions() [3]float64 {
	return [3]float64{b.FrenteMM, b.ProfundoMM, b.AltoMM}
}

// HasPositiveDimensions reports whether all interior dimensions are strictly positive.
func (b BoxModel) HasPositiveDimensions() bool {
	return b.FrenteMM > 0 && b.ProfundoMM > 0 && b.AltoMM > 0
}

// StockLevel maps a model id to the number of boxes currently free to allocate.
type StockLevel map[string]int

// Available returns the stock for a model, treating unknown models and negative counts as zero.
func (s StockLevel) Available(modelID string) int {
	if n := s[modelID]; n > 0 {
		return n
	}
	return 0
}

// Clone returns an independent copy of the stock level.
func (s StockLevel) Clone() StockLevel {
	out := make(StockLevel, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Product is a catalog row describing a packable product.
type Product struct {
	Code     string  `bson:"code" json:"codigo" yaml:"code"`
	Name     string  `bson:"name" json:"nombre" yaml:"name"`
	LengthMM float64 `bson:"length_mm" json:"largo_mm" yaml:"length_mm"`
	WidthMM  float64 `bson:"width_mm" json:"ancho_mm" yaml:"width_mm"`
	HeightMM float64 `bson:"height_mm" json:"alto_mm" yaml:"height_mm"`
}

// CatalogSnapshot is a point-in-time view of a site's box models and stock.
type CatalogSnapshot struct {
	SiteID    string     `json:"site_id"`
	Models    []BoxModel `json:"modelos"`
	Stock     StockLevel `json:"stock"`
	FetchedAt time.Time  `json:"fetched_at"`
}
