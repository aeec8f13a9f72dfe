package packing

import "github.com/guttosm/box-service/internal/domain/model"

// Evaluate computes the best orientation of every item inside box.
// The evaluation is complete only when every item fits.
func Evaluate(box model.BoxModel, stock int, items []model.NormalizedItem) model.CandidateEvaluation {
	ev := model.CandidateEvaluation{
		Model:              box,
		Stock:              stock,
		Orientations:       make([]*model.OrientationResult, len(items)),
		CompatibleComplete: len(items) > 0,
	}
	container := box.Dimensions()
	for i, item := range items {
		ev.Orientations[i] = BestOrientation(container, item.Dimensions())
		if ev.Orientations[i] == nil {
			ev.CompatibleComplete = false
		}
	}
	return ev
}

// EvaluateAll evaluates every model against the items in catalog order.
func EvaluateAll(models []model.BoxModel, stock model.StockLevel, items []model.NormalizedItem) []model.CandidateEvaluation {
	out := make([]model.CandidateEvaluation, 0, len(models))
	for _, box := range models {
		out = append(out, Evaluate(box, stock.Available(box.ModelID), items))
	}
	return out
}
