package packing

import (
	"sort"

	"github.com/guttosm/box-service/internal/domain/model"
)

// bin is one physical box opened while building a mixed plan.
type bin struct {
	model      int
	freeVolume float64
	units      []int
}

// room returns how many more units of item fit in the bin, bounded by the
// grid capacity of its orientation and by the remaining free volume.
func (b *bin) room(item, capacity int, unitVolume float64) int {
	if capacity <= 0 || b.units[item] >= capacity || b.freeVolume < unitVolume {
		return 0
	}
	return min(capacity-b.units[item], unitsByVolume(b.freeVolume, unitVolume))
}

func (b *bin) place(item, n int, unitVolume float64) {
	b.units[item] += n
	b.freeVolume = takeVolume(b.freeVolume, unitVolume, n)
}

// placement records units of one item put into one bin.
type placement struct {
	item  int
	bin   int
	units int
}

// mixedPacker owns all mutable state of a single PackMixed run.
type mixedPacker struct {
	models       []model.BoxModel
	boxVolumes   []float64
	stockBefore  []int
	stockLeft    []int
	used         []bool
	orientations [][]*model.OrientationResult
	items        []model.NormalizedItem
	unitVolumes  []float64
	bins         []bin
	placements   []placement
	unmet        []int
}

// PackMixed greedily spreads the order across every box model with stock.
//
// Items are placed largest unit volume first. Each unit goes into the open bin
// that leaves the least free volume, or else into a newly opened bin of the
// best scoring model. Units that no model with remaining stock can take are
// reported as unmet. The stock snapshot is never modified.
func PackMixed(models []model.BoxModel, stock model.StockLevel, items []model.NormalizedItem) model.MixedPlan {
	p := newMixedPacker(models, stock, items)
	for _, i := range p.processingOrder() {
		p.packItem(i)
	}
	return p.plan()
}

// PackMixedItems validates and normalizes raw items, then builds a mixed plan.
func PackMixedItems(models []model.BoxModel, stock model.StockLevel, raw []model.RequestItem) (model.MixedResult, error) {
	if err := ValidateItems(raw); err != nil {
		return model.MixedResult{}, err
	}
	items := Normalize(raw)
	units, volume := Totals(items)
	return model.MixedResult{
		Items:         items,
		Mix:           PackMixed(models, stock, items),
		TotalUnits:    units,
		TotalVolumeM3: volume,
	}, nil
}

func newMixedPacker(models []model.BoxModel, stock model.StockLevel, items []model.NormalizedItem) *mixedPacker {
	p := &mixedPacker{
		models:       models,
		boxVolumes:   make([]float64, len(models)),
		stockBefore:  make([]int, len(models)),
		stockLeft:    make([]int, len(models)),
		used:         make([]bool, len(models)),
		orientations: make([][]*model.OrientationResult, len(models)),
		items:        items,
		unitVolumes:  make([]float64, len(items)),
		unmet:        make([]int, len(items)),
	}
	for i, item := range items {
		p.unitVolumes[i] = exactVolumeM3(item.LengthMM, item.WidthMM, item.HeightMM)
	}
	for m, box := range models {
		p.boxVolumes[m] = exactVolumeM3(box.FrenteMM, box.ProfundoMM, box.AltoMM)
		p.stockBefore[m] = stock.Available(box.ModelID)
		p.stockLeft[m] = p.stockBefore[m]
		p.orientations[m] = Evaluate(box, p.stockBefore[m], items).Orientations
	}
	return p
}

// processingOrder sorts item indexes by unit volume then quantity, both descending.
func (p *mixedPacker) processingOrder() []int {
	order := make([]int, len(p.items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if p.unitVolumes[ia] != p.unitVolumes[ib] {
			return p.unitVolumes[ia] > p.unitVolumes[ib]
		}
		return p.items[ia].Quantity > p.items[ib].Quantity
	})
	return order
}

func (p *mixedPacker) capacity(m, item int) int {
	if o := p.orientations[m][item]; o != nil {
		return o.Capacity
	}
	return 0
}

func (p *mixedPacker) packItem(item int) {
	remaining := p.items[item].Quantity

	for remaining > 0 {
		if b, n := p.bestOpenBin(item, remaining); b >= 0 {
			p.put(item, b, n)
			remaining -= n
			continue
		}
		m, n := p.bestNewModel(item, remaining)
		if m < 0 {
			break
		}
		p.stockLeft[m]--
		p.used[m] = true
		p.bins = append(p.bins, bin{
			model:      m,
			freeVolume: p.boxVolumes[m],
			units:      make([]int, len(p.items)),
		})
		p.put(item, len(p.bins)-1, n)
		remaining -= n
	}

	p.unmet[item] = remaining
}

func (p *mixedPacker) put(item, b, n int) {
	p.bins[b].place(item, n, p.unitVolumes[item])
	p.placements = append(p.placements, placement{item: item, bin: b, units: n})
}

// bestOpenBin returns the open bin whose free volume after placement is
// smallest, with the number of units to place, or -1 when none qualifies.
func (p *mixedPacker) bestOpenBin(item, remaining int) (int, int) {
	unitVolume := p.unitVolumes[item]
	best, bestUnits := -1, 0
	bestLeftover := 0.0

	for b := range p.bins {
		room := p.bins[b].room(item, p.capacity(p.bins[b].model, item), unitVolume)
		if room <= 0 {
			continue
		}
		n := min(remaining, room)
		leftover := takeVolume(p.bins[b].freeVolume, unitVolume, n)
		if best < 0 || leftover < bestLeftover {
			best, bestUnits, bestLeftover = b, n, leftover
		}
	}
	return best, bestUnits
}

type newBinCandidate struct {
	model     int
	used      bool
	units     int
	leftover  float64
	boxVolume float64
}

func (c newBinCandidate) betterThan(o newBinCandidate) bool {
	if c.used != o.used {
		return c.used
	}
	if c.units != o.units {
		return c.units > o.units
	}
	if c.leftover != o.leftover {
		return c.leftover < o.leftover
	}
	return c.boxVolume < o.boxVolume
}

// bestNewModel picks the model to open a fresh bin for item, preferring
// models already used in the plan, then more units per bin, then less wasted
// volume, then smaller boxes. It returns -1 when no model has stock left.
func (p *mixedPacker) bestNewModel(item, remaining int) (int, int) {
	unitVolume := p.unitVolumes[item]
	var best *newBinCandidate

	for m := range p.models {
		capacity := p.capacity(m, item)
		if capacity <= 0 || p.stockLeft[m] <= 0 {
			continue
		}
		units := min(remaining, min(capacity, unitsByVolume(p.boxVolumes[m], unitVolume)))
		if units <= 0 {
			continue
		}
		c := newBinCandidate{
			model:     m,
			used:      p.used[m],
			units:     units,
			leftover:  takeVolume(p.boxVolumes[m], unitVolume, units),
			boxVolume: p.boxVolumes[m],
		}
		if best == nil || c.betterThan(*best) {
			best = &c
		}
	}
	if best == nil {
		return -1, 0
	}
	return best.model, best.units
}

func (p *mixedPacker) plan() model.MixedPlan {
	plan := model.MixedPlan{
		Models: make([]model.ModelSummary, 0),
		Items:  make([]model.ItemAssignment, len(p.items)),
	}

	opened := make([]int, len(p.models))
	for _, b := range p.bins {
		opened[b.model]++
	}
	for m, box := range p.models {
		if opened[m] == 0 {
			continue
		}
		plan.Models = append(plan.Models, model.ModelSummary{
			ModelID:        box.ModelID,
			ModelName:      box.Name,
			BoxesAssigned:  opened[m],
			BoxesAvailable: p.stockBefore[m],
			BoxesRemaining: max(0, p.stockBefore[m]-opened[m]),
			Deficit:        max(0, opened[m]-p.stockBefore[m]),
		})
		plan.TotalBoxes += opened[m]
	}

	for i, item := range p.items {
		plan.Items[i] = model.ItemAssignment{
			Code:         item.Code,
			Name:         item.Name,
			Quantity:     item.Quantity,
			CoveredUnits: item.Quantity - p.unmet[i],
			UnmetUnits:   p.unmet[i],
			Assignments:  p.assignmentsFor(i),
		}
		plan.TotalUnmetUnits += p.unmet[i]
	}
	return plan
}

// assignmentsFor groups an item's placements by model in first-use order.
func (p *mixedPacker) assignmentsFor(item int) []model.Assignment {
	out := make([]model.Assignment, 0)
	index := make(map[int]int)
	seenBin := make(map[int]bool)

	for _, pl := range p.placements {
		if pl.item != item {
			continue
		}
		m := p.bins[pl.bin].model
		k, ok := index[m]
		if !ok {
			o := p.orientations[m][item]
			out = append(out, model.Assignment{
				ModelID:        p.models[m].ModelID,
				ModelName:      p.models[m].Name,
				CapacityPerBox: o.Capacity,
				Orientation:    o.Orientation,
			})
			k = len(out) - 1
			index[m] = k
		}
		if !seenBin[pl.bin] {
			seenBin[pl.bin] = true
			out[k].Boxes++
		}
		out[k].UnitsAssigned += pl.units
	}

	for k := range out {
		out[k].LeftoverUnits = spareUnits(out[k].Boxes, out[k].CapacityPerBox, out[k].UnitsAssigned)
	}
	return out
}
