package packing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"floorDiv exact", floorDiv(600, 200), 3},
		{"floorDiv zero divisor", floorDiv(600, 0), 0},
		{"floorDiv saturates", floorDiv(600, 1e-30), math.MaxInt},
		{"ceilDiv rounds up", ceilDiv(0.118, 0.072), 2},
		{"ceilDiv saturates", ceilDiv(1, 1e-30), math.MaxInt},
		{"ceilInt rounds up", ceilInt(12, 8), 2},
		{"ceilInt max divisor", ceilInt(5, math.MaxInt), 1},
		{"ceilInt zero quantity", ceilInt(0, 4), 0},
		{"mulCount plain", mulCount(6, 7), 42},
		{"mulCount zero", mulCount(0, math.MaxInt), 0},
		{"mulCount saturates", mulCount(math.MaxInt/2, 3), math.MaxInt},
		{"unitsByVolume plain", unitsByVolume(0.072, 0.008), 9},
		{"unitsByVolume zero unit", unitsByVolume(0.072, 0), math.MaxInt},
		{"spareUnits clamps negative", spareUnits(1, 6, 10), 0},
		{"spareUnits saturated capacity", spareUnits(2, math.MaxInt, 3), math.MaxInt - 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestExactVolumeM3(t *testing.T) {
	assert.Zero(t, volumeM3(7, 7, 7))
	assert.InDelta(t, 3.43e-7, exactVolumeM3(7, 7, 7), 1e-15)
	assert.Positive(t, exactVolumeM3(0.0001, 0.0001, 0.0001))
	assert.InDelta(t, 0.072, takeVolume(0.072, 3.43e-7, 10), 1e-5)
	assert.Less(t, takeVolume(0.072, 3.43e-7, 10), 0.072)
}
