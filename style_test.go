package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherink/ink/internal/raster"
)

func TestFillRuleToRaster(t *testing.T) {
	assert.IsType(t, raster.NonZero{}, NonZero.toRaster())
	assert.IsType(t, raster.EvenOdd{}, EvenOdd.toRaster())
	assert.IsType(t, raster.Abs{}, Abs.toRaster())
	assert.IsType(t, raster.Raw{}, Raw.toRaster())
}

func TestFillRuleUnknownDefaultsToNonZero(t *testing.T) {
	var r FillRule = 99
	assert.IsType(t, raster.NonZero{}, r.toRaster())
}
