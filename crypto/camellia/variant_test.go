package camellia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectVariantBlockCounts(t *testing.T) {
	v := SelectVariant()
	switch v {
	case None:
		assert.Equal(t, 1, v.BlockCount())
		assert.Equal(t, "none", v.String())
	case Simd128:
		assert.Equal(t, Simd128BlockCount, v.BlockCount())
		assert.Equal(t, "simd128", v.String())
	case Simd256:
		assert.Equal(t, Simd256BlockCount, v.BlockCount())
		assert.Equal(t, "simd256", v.String())
	default:
		t.Fatalf("unexpected variant %v", v)
	}
}

func TestUnsupportedCPUError(t *testing.T) {
	err := UnsupportedCPUError{Requested: Simd256}
	assert.Contains(t, err.Error(), "simd256")
}
