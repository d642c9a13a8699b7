package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float64", in: 3.5, want: 3.5},
		{name: "int", in: 7, want: 7},
		{name: "numeric string", in: "3.7", want: 3.7},
		{name: "padded string", in: " 2 ", want: 2},
		{name: "bool", in: true, want: 1},
		{name: "bytes", in: []byte("1.5"), want: 1.5},
		{name: "word string", in: "abc", wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{name: "int", in: 7, want: 7},
		{name: "float truncates", in: 3.9, want: 3},
		{name: "integral string", in: "12", want: 12},
		{name: "fractional string fails", in: "3.7", wantErr: true},
		{name: "bool", in: false, want: 0},
		{name: "word string", in: "x", wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "x", ToString("x"))
	assert.Equal(t, "12", ToString(12))
	assert.Equal(t, "b", ToString([]byte("b")))
}
