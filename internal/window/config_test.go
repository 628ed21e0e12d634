package window

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(5000)
	assert.NilError(t, err)
	assert.Equal(t, cfg, Config{ItemHeight: 50, ItemCount: 5000, Tolerance: 5})
}

func TestNewConfig_Options(t *testing.T) {
	cfg, err := NewConfig(5000, WithItemHeight(150), WithTolerance(2))
	assert.NilError(t, err)
	assert.Equal(t, cfg, Config{ItemHeight: 150, ItemCount: 5000, Tolerance: 2})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{ItemHeight: 1, ItemCount: 1, Tolerance: 0}, ""},
		{"zero item height", Config{ItemHeight: 0, ItemCount: 10, Tolerance: 1}, "itemHeight"},
		{"negative item height", Config{ItemHeight: -5, ItemCount: 10, Tolerance: 1}, "itemHeight"},
		{"zero item count", Config{ItemHeight: 5, ItemCount: 0, Tolerance: 1}, "itemCount"},
		{"extent overflows", Config{ItemHeight: 2, ItemCount: math.MaxInt/2 + 1, Tolerance: 0}, "total extent"},
		{"largest extent", Config{ItemHeight: 2, ItemCount: math.MaxInt / 2, Tolerance: 0}, ""},
		{"negative tolerance", Config{ItemHeight: 5, ItemCount: 10, Tolerance: -1}, "tolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NilError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewConfig_RejectsZeroItemHeight(t *testing.T) {
	_, err := NewConfig(10, WithItemHeight(0))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
