package model

// Orientation is the rotation chosen for an item, in millimeters along the container axes.
type Orientation struct {
	Length float64 `json:"largo_mm"`
	Width  float64 `json:"ancho_mm"`
	Height float64 `json:"alto_mm"`
}

// Layout is the grid arrangement of an orientation inside a container.
type Layout struct {
	AlongFront  int `json:"a_lo_frente"`
	AlongDepth  int `json:"a_lo_profundo"`
	AlongHeight int `json:"a_lo_alto"`
}

// OrientationResult is the best rotation of one item inside one box model.
// Capacity is always the product of the layout counts and is at least 1.
type OrientationResult struct {
	Orientation Orientation `json:"orientacion"`
	Layout      Layout      `json:"layout"`
	Capacity    int         `json:"capacidad"`
}

// CandidateEvaluation holds per-item orientations of every item for one box model.
// Orientations is indexed by item position; nil entries mean the item does not fit.
type CandidateEvaluation struct {
	Model              BoxModel             `json:"modelo"`
	Stock              int                  `json:"stock"`
	Orientations       []*OrientationResult `json:"orientaciones"`
	CompatibleComplete bool                 `json:"compatible_completo"`
}

// Detail is the per-item breakdown of a single-model recommendation.
// LeftoverUnits is BoxesRequired*CapacityPerBox - Quantity clamped at zero;
// it is zero for items whose box count was lowered to share boxes.
type Detail struct {
	Code           string      `json:"codigo,omitempty"`
	Name           string      `json:"nombre,omitempty"`
	Quantity       int         `json:"cantidad"`
	BoxesRequired  int         `json:"cajas_requeridas"`
	CapacityPerBox int         `json:"capacidad_por_caja"`
	LeftoverUnits  int         `json:"sobrante_unidades"`
	Orientation    Orientation `json:"orientacion"`
	Layout         Layout      `json:"layout"`
}

// Recommendation is one box model able to hold the whole order on its own.
type Recommendation struct {
	ModelID          string   `json:"modelo_id"`
	ModelName        string   `json:"nombre_modelo"`
	BoxesRequired    int      `json:"cajas_requeridas"`
	BoxesAvailable   int      `json:"cajas_disponibles"`
	Deficit          int      `json:"deficit"`
	OccupancyPercent *float64 `json:"ocupacion_porcentaje"`
	BoxVolumeM3      float64  `json:"volumen_caja_m3"`
	TotalBoxVolumeM3 float64  `json:"volumen_total_cajas_m3"`
	LeftoverVolumeM3 float64  `json:"volumen_sobrante_m3"`
	Details          []Detail `json:"detalle"`
} // @name Recommendation

// RecommendationResult is the single-model output for an order.
type RecommendationResult struct {
	Items           []NormalizedItem `json:"items"`
	Recommendations []Recommendation `json:"recomendaciones"`
	TotalUnits      int              `json:"total_unidades"`
	TotalVolumeM3   float64          `json:"volumen_total_m3"`
} // @name RecommendationResult

// EvaluationResult lists the compatibility of every box model with an order.
type EvaluationResult struct {
	Items       []NormalizedItem      `json:"items"`
	Evaluations []CandidateEvaluation `json:"evaluaciones"`
} // @name EvaluationResult
