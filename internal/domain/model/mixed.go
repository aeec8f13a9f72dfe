package model

// Assignment aggregates the units of one item placed into bins of one box model.
type Assignment struct {
	ModelID        string      `json:"modelo_id"`
	ModelName      string      `json:"nombre_modelo"`
	Boxes          int         `json:"cajas"`
	UnitsAssigned  int         `json:"unidades_asignadas"`
	CapacityPerBox int         `json:"capacidad_por_caja"`
	LeftoverUnits  int         `json:"sobrante_unidades"`
	Orientation    Orientation `json:"orientacion"`
}

// ItemAssignment is the mixed-plan breakdown for one order line.
// CoveredUnits + UnmetUnits always equals Quantity.
type ItemAssignment struct {
	Code         string       `json:"codigo,omitempty"`
	Name         string       `json:"nombre,omitempty"`
	Quantity     int          `json:"cantidad"`
	CoveredUnits int          `json:"cubierto_unidades"`
	UnmetUnits   int          `json:"sin_cobertura"`
	Assignments  []Assignment `json:"asignaciones"`
}

// ModelSummary reports how many bins of a box model the plan opened.
type ModelSummary struct {
	ModelID        string `json:"modelo_id"`
	ModelName      string `json:"nombre_modelo"`
	BoxesAssigned  int    `json:"cajas_asignadas"`
	BoxesAvailable int    `json:"cajas_disponibles"`
	BoxesRemaining int    `json:"cajas_restantes"`
	Deficit        int    `json:"deficit"`
}

// MixedPlan is the result of the mixed-model packer.
type MixedPlan struct {
	Models          []ModelSummary   `json:"modelos"`
	Items           []ItemAssignment `json:"items"`
	TotalBoxes      int              `json:"total_cajas"`
	TotalUnmetUnits int              `json:"total_unidades_sin_cobertura"`
} // @name MixedPlan

// MixedResult is the mixed-model output for an order.
type MixedResult struct {
	Items         []NormalizedItem `json:"items"`
	Mix           MixedPlan        `json:"mix"`
	TotalUnits    int              `json:"total_unidades"`
	TotalVolumeM3 float64          `json:"volumen_total_m3"`
} // @name MixedResult
