package packing

import "github.com/guttosm/box-service/internal/domain/model"

// permutations enumerates the six axis assignments in a fixed order.
// Ties in capacity keep the first permutation seen here.
var permutations = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// BestOrientation returns the axis-aligned rotation of item that fits the most
// whole units into container by grid arrangement, or nil if it fits in no rotation.
func BestOrientation(container, item [3]float64) *model.OrientationResult {
	for axis := 0; axis < 3; axis++ {
		if container[axis] <= 0 || item[axis] <= 0 {
			return nil
		}
	}

	var best *model.OrientationResult
	for _, p := range permutations {
		rotated := [3]float64{item[p[0]], item[p[1]], item[p[2]]}

		var counts [3]int
		fits := true
		for axis := 0; axis < 3; axis++ {
			counts[axis] = floorDiv(container[axis], rotated[axis])
			if counts[axis] == 0 {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}

		capacity := mulCount(mulCount(counts[0], counts[1]), counts[2])
		if best == nil || capacity > best.Capacity {
			best = &model.OrientationResult{
				Orientation: model.Orientation{Length: rotated[0], Width: rotated[1], Height: rotated[2]},
				Layout:      model.Layout{AlongFront: counts[0], AlongDepth: counts[1], AlongHeight: counts[2]},
				Capacity:    capacity,
			}
		}
	}
	return best
}
