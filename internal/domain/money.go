package domain

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (cents). All commission math is
// done on this type; floats only appear at the parsing/formatting edges.
type Money int64

// MoneyFromFloat converts a major-unit amount (e.g. 10.01) to minor units,
// rounding to the nearest cent.
func MoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float returns the amount in major units for display and gateway payloads.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// PercentOf returns percent% of m, rounded half away from zero to the nearest
// minor unit.
func (m Money) PercentOf(percent float64) Money {
	return Money(math.Round(float64(m) * percent / 100))
}
