package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 4, 4},
		{"Int64", int64(9), 9},
		{"Float", 2.9, 2},
		{"String", " 16 ", 16},
		{"Bytes", []byte("3"), 3},
		{"Garbage", "lots", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	for _, in := range []any{true, 1, "1", "true", "TRUE", "yes", " on ", []byte("true")} {
		assert.True(t, ToBool(in), "%v", in)
	}
	for _, in := range []any{false, 0, 2, "0", "false", "no", "", nil, 1.0} {
		assert.False(t, ToBool(in), "%v", in)
	}
}

func TestFlagOrDefault(t *testing.T) {
	assert.True(t, FlagOrDefault("", true))
	assert.False(t, FlagOrDefault("  ", false))
	assert.False(t, FlagOrDefault("false", true))
	assert.True(t, FlagOrDefault("1", false))
}
