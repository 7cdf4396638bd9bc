package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivide(t *testing.T) {
	negZero := math.Copysign(0, -1)
	posInf := math.Inf(1)
	negInf := math.Inf(-1)
	nan := math.NaN()

	const (
		largest  = math.MaxFloat64
		smallest = math.SmallestNonzeroFloat64
	)

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		// NaN and Inf cases
		{name: "zero by zero", a: 0, b: 0, want: nan},
		{name: "negative zero by negative zero", a: negZero, b: negZero, want: nan},
		{name: "negative zero by zero", a: negZero, b: 0, want: nan},
		{name: "zero by negative zero", a: 0, b: negZero, want: nan},
		{name: "one by zero", a: 1, b: 0, want: posInf},
		{name: "minus one by zero", a: -1, b: 0, want: negInf},
		{name: "max by zero", a: largest, b: 0, want: posInf},
		{name: "smallest by zero", a: smallest, b: 0, want: posInf},
		{name: "max by smallest overflows", a: largest, b: smallest, want: posInf},

		// finite results
		{name: "zero by one", a: 0, b: 1, want: 0},
		{name: "zero by minus one", a: 0, b: -1, want: negZero},
		{name: "negative zero by one", a: negZero, b: 1, want: negZero},
		{name: "negative zero by minus one", a: negZero, b: -1, want: 0},
		{name: "one by one", a: 1, b: 1, want: 1},
		{name: "one by minus one", a: 1, b: -1, want: -1},
		{name: "minus one by one", a: -1, b: 1, want: -1},
		{name: "minus one by minus one", a: -1, b: -1, want: 1},
		{name: "max by max", a: largest, b: largest, want: 1},
		{name: "smallest by max underflows", a: smallest, b: largest, want: 0},
		{name: "smallest by smallest", a: smallest, b: smallest, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Divide(tt.a, tt.b)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "Divide(%v, %v) = %v, want NaN", tt.a, tt.b, got)
				return
			}
			assert.Equal(t, tt.want, got, "Divide(%v, %v)", tt.a, tt.b)
			// == does not tell 0 from -0
			assert.Equal(t, math.Signbit(tt.want), math.Signbit(got), "Divide(%v, %v) sign", tt.a, tt.b)
		})
	}
}

func TestDivide_InfinityOperands(t *testing.T) {
	inf := math.Inf(1)

	assert.True(t, math.IsNaN(Divide(inf, inf)))
	assert.True(t, math.IsNaN(Divide(math.NaN(), 1)))
	assert.True(t, math.IsInf(Divide(inf, -1), -1))

	got := Divide(-1, inf)
	assert.Equal(t, 0.0, got)
	assert.True(t, math.Signbit(got), "Divide(-1, +Inf) should be -0")
}
