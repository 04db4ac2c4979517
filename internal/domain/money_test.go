package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromFloat(t *testing.T) {
	assert.Equal(t, Money(250), MoneyFromFloat(2.50))
	assert.Equal(t, Money(1001), MoneyFromFloat(10.01))
	assert.Equal(t, Money(1000), MoneyFromFloat(9.999))
	assert.Equal(t, Money(0), MoneyFromFloat(0))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "2.50", Money(250).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "-1.23", Money(-123).String())
	assert.Equal(t, "1000.00", Money(100000).String())
}

func TestMoneyPercentOf(t *testing.T) {
	testCases := []struct {
		name     string
		amount   Money
		percent  float64
		expected Money
	}{
		{name: "whole percent", amount: 10000, percent: 2, expected: 200},
		{name: "fractional percent rounds to nearest cent", amount: 1001, percent: 12.5, expected: 125},
		{name: "half cent rounds away from zero", amount: 10, percent: 5, expected: 1},
		{name: "zero percent", amount: 10000, percent: 0, expected: 0},
		{name: "zero amount", amount: 0, percent: 50, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.amount.PercentOf(tc.percent))
		})
	}
}
