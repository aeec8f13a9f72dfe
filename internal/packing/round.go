package packing

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	volumePlaces  = 6
	percentPlaces = 2
)

var maxCount = decimal.NewFromInt(math.MaxInt)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// roundVolume rounds a cubic-meter value to six decimals.
func roundVolume(v float64) float64 {
	return dec(v).Round(volumePlaces).InexactFloat64()
}

// roundPercent rounds a percentage to two decimals.
func roundPercent(v float64) float64 {
	return dec(v).Round(percentPlaces).InexactFloat64()
}

// volumeM3 converts three millimeter dimensions into cubic meters rounded to six decimals.
func volumeM3(a, b, c float64) float64 {
	return dec(a).Mul(dec(b)).Mul(dec(c)).Shift(-9).Round(volumePlaces).InexactFloat64()
}

// exactVolumeM3 is volumeM3 without rounding. Items under half a cubic
// centimeter round to zero, so bin arithmetic must use this instead.
func exactVolumeM3(a, b, c float64) float64 {
	return dec(a).Mul(dec(b)).Mul(dec(c)).Shift(-9).InexactFloat64()
}

// takeVolume returns free minus n units of unit volume, unrounded.
func takeVolume(free, unit float64, n int) float64 {
	return dec(free).Sub(dec(unit).Mul(decimal.NewFromInt(int64(n)))).InexactFloat64()
}

// mulVolume multiplies a volume by a count and rounds the result.
func mulVolume(v float64, n int) float64 {
	return dec(v).Mul(decimal.NewFromInt(int64(n))).Round(volumePlaces).InexactFloat64()
}

// subVolume subtracts b from a and rounds the result.
func subVolume(a, b float64) float64 {
	return dec(a).Sub(dec(b)).Round(volumePlaces).InexactFloat64()
}

// floorDiv returns floor(a/b) computed in decimal arithmetic, or 0 when b is not positive.
// Quotients beyond math.MaxInt saturate.
func floorDiv(a, b float64) int {
	if b <= 0 {
		return 0
	}
	return toCount(dec(a).Div(dec(b)).Floor())
}

// ceilDiv returns ceil(a/b) computed in decimal arithmetic, or 0 when b is not positive.
// Quotients beyond math.MaxInt saturate.
func ceilDiv(a, b float64) int {
	if b <= 0 {
		return 0
	}
	return toCount(dec(a).Div(dec(b)).Ceil())
}

// unitsByVolume returns how many units of volume unit fit in free. A unit
// volume that underflows to zero leaves the count bounded by the grid alone.
func unitsByVolume(free, unit float64) int {
	if unit <= 0 {
		return math.MaxInt
	}
	return floorDiv(free, unit)
}

func toCount(d decimal.Decimal) int {
	if d.GreaterThan(maxCount) {
		return math.MaxInt
	}
	return int(d.IntPart())
}

// ceilInt returns ceil(a/b) for positive b. It does not overflow when b is math.MaxInt.
func ceilInt(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a-1)/b + 1
}

// mulCount multiplies two non-negative counts, saturating at math.MaxInt.
func mulCount(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// spareUnits is boxes*capacity - used, clamped at zero.
func spareUnits(boxes, capacity, used int) int {
	return max(0, mulCount(boxes, capacity)-used)
}
