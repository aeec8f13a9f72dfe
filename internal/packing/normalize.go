package packing

import "github.com/guttosm/box-service/internal/domain/model"

// Normalize computes unit and total volume for each item, preserving order.
func Normalize(items []model.RequestItem) []model.NormalizedItem {
	out := make([]model.NormalizedItem, len(items))
	for i, item := range items {
		out[i] = NormalizeItem(item)
	}
	return out
}

// NormalizeItem computes the rounded unit and total volume of one item.
func NormalizeItem(item model.RequestItem) model.NormalizedItem {
	unit := volumeM3(item.LengthMM, item.WidthMM, item.HeightMM)
	return model.NormalizedItem{
		RequestItem:   item,
		UnitVolumeM3:  unit,
		TotalVolumeM3: mulVolume(unit, item.Quantity),
	}
}

// Totals returns the total unit count and total volume of normalized items.
func Totals(items []model.NormalizedItem) (units int, volumeM3 float64) {
	for _, item := range items {
		units += item.Quantity
		volumeM3 = dec(volumeM3).Add(dec(item.TotalVolumeM3)).InexactFloat64()
	}
	return units, roundVolume(volumeM3)
}
