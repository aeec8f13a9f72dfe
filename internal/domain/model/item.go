package model

// RequestItem is one line of an incoming order. Dimensions are in millimeters.
type RequestItem struct {
	Code     string  `json:"codigo,omitempty" yaml:"codigo" example:"SKU-001"`
	Name     string  `json:"nombre,omitempty" yaml:"nombre" example:"Vaccine tray"`
	LengthMM float64 `json:"largo_mm" yaml:"largo_mm" example:"300"`
	WidthMM  float64 `json:"ancho_mm" yaml:"ancho_mm" example:"200"`
	HeightMM float64 `json:"alto_mm" yaml:"alto_mm" example:"150"`
	Quantity int     `json:"cantidad" yaml:"cantidad" example:"4"`
} // @name RequestItem

// Dimensions returns the item dimensions as (length, width, height).
func (i RequestItem) Dimensions() [3]float64 {
	return [3]float64{i.LengthMM, i.WidthMM, i.HeightMM}
}

// HasDimensions reports whether any dimension was supplied.
func (i RequestItem) HasDimensions() bool {
	return i.LengthMM != 0 || i.WidthMM != 0 || i.HeightMM != 0
}

// NormalizedItem is a RequestItem with its computed unit and total volume in cubic meters.
type NormalizedItem struct {
	RequestItem
	UnitVolumeM3  float64 `json:"unit_volume_m3" example:"0.009"`
	TotalVolumeM3 float64 `json:"total_volume_m3" example:"0.036"`
} // @name NormalizedItem
