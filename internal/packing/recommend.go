package packing

import (
	"sort"

	"github.com/guttosm/box-service/internal/domain/model"
)

// Recommend ranks the box models that can hold every item on their own.
//
// Models with no available stock are skipped, as are models that cannot fit
// at least one item in any rotation. The result is ordered best first; it is
// empty when no single model suffices.
func Recommend(models []model.BoxModel, stock model.StockLevel, items []model.NormalizedItem) []model.Recommendation {
	_, totalVolume := Totals(items)

	recs := make([]model.Recommendation, 0, len(models))
	for _, box := range models {
		available := stock.Available(box.ModelID)
		if available <= 0 {
			continue
		}
		ev := Evaluate(box, available, items)
		if !ev.CompatibleComplete {
			continue
		}
		recs = append(recs, recommendFor(ev, items, totalVolume))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return rankLess(&recs[i], &recs[j])
	})
	return recs
}

// RecommendItems validates and normalizes raw items, then ranks single-model recommendations.
func RecommendItems(models []model.BoxModel, stock model.StockLevel, raw []model.RequestItem) (model.RecommendationResult, error) {
	if err := ValidateItems(raw); err != nil {
		return model.RecommendationResult{}, err
	}
	items := Normalize(raw)
	units, volume := Totals(items)
	return model.RecommendationResult{
		Items:           items,
		Recommendations: Recommend(models, stock, items),
		TotalUnits:      units,
		TotalVolumeM3:   volume,
	}, nil
}

func recommendFor(ev model.CandidateEvaluation, items []model.NormalizedItem, totalVolume float64) model.Recommendation {
	box := ev.Model
	boxVolume := volumeM3(box.FrenteMM, box.ProfundoMM, box.AltoMM)

	perItem := make([]int, len(items))
	capacities := make([]int, len(items))
	byItemMax := 0
	for i, item := range items {
		capacities[i] = ev.Orientations[i].Capacity
		perItem[i] = ceilInt(item.Quantity, capacities[i])
		if perItem[i] > byItemMax {
			byItemMax = perItem[i]
		}
	}

	byVolume := byItemMax
	if boxVolume > 0 {
		byVolume = max(1, ceilDiv(totalVolume, boxVolume))
	}
	required := max(byItemMax, byVolume)

	reconcile(perItem, capacities, required)

	details := make([]model.Detail, len(items))
	for i, item := range items {
		o := ev.Orientations[i]
		details[i] = model.Detail{
			Code:           item.Code,
			Name:           item.Name,
			Quantity:       item.Quantity,
			BoxesRequired:  perItem[i],
			CapacityPerBox: o.Capacity,
			LeftoverUnits:  spareUnits(perItem[i], o.Capacity, item.Quantity),
			Orientation:    o.Orientation,
			Layout:         o.Layout,
		}
	}

	totalBoxVolume := mulVolume(boxVolume, required)
	rec := model.Recommendation{
		ModelID:          box.ModelID,
		ModelName:        box.Name,
		BoxesRequired:    required,
		BoxesAvailable:   ev.Stock,
		Deficit:          max(0, required-ev.Stock),
		BoxVolumeM3:      boxVolume,
		TotalBoxVolumeM3: totalBoxVolume,
		LeftoverVolumeM3: max(0, subVolume(totalBoxVolume, totalVolume)),
		Details:          details,
	}
	if totalBoxVolume > 0 {
		ratio := dec(totalVolume).Div(dec(totalBoxVolume)).InexactFloat64()
		occupancy := roundPercent(min(1, ratio) * 100)
		rec.OccupancyPercent = &occupancy
	}
	return rec
}

// reconcile lowers per-item box counts whose sum exceeds target, draining the
// items with the smallest per-box capacity first. No count drops below one.
func reconcile(boxes, capacities []int, target int) {
	sum := 0
	for _, b := range boxes {
		sum += b
	}
	excess := sum - target
	if excess <= 0 {
		return
	}

	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return capacities[order[a]] < capacities[order[b]]
	})

	for _, i := range order {
		if excess == 0 {
			return
		}
		cut := min(excess, boxes[i]-1)
		boxes[i] -= cut
		excess -= cut
	}
}

// rankLess orders recommendations by total box volume, leftover volume, box
// count, occupancy (descending) and finally model name.
func rankLess(a, b *model.Recommendation) bool {
	if a.TotalBoxVolumeM3 != b.TotalBoxVolumeM3 {
		return a.TotalBoxVolumeM3 < b.TotalBoxVolumeM3
	}
	if a.LeftoverVolumeM3 != b.LeftoverVolumeM3 {
		return a.LeftoverVolumeM3 < b.LeftoverVolumeM3
	}
	if a.BoxesRequired != b.BoxesRequired {
		return a.BoxesRequired < b.BoxesRequired
	}
	oa, ob := occupancyOf(a), occupancyOf(b)
	if oa != ob {
		return oa > ob
	}
	return a.ModelName < b.ModelName
}

func occupancyOf(r *model.Recommendation) float64 {
	if r.OccupancyPercent == nil {
		return -1
	}
	return *r.OccupancyPercent
}
