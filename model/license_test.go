package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCharges(t *testing.T) {
	charges := NewCharges(4000, 480, 200)
	assert.InDelta(t, 4280.0, charges.TotalCharges, 0.001)
	assert.InDelta(t, 4000.0, charges.BaseRate, 0.001)

	free := NewCharges(0, 0, 0)
	assert.Zero(t, free.TotalCharges)

	// Discount above base plus tax goes negative rather than clamping;
	// callers decide what a credit means.
	credit := NewCharges(100, 0, 150)
	assert.InDelta(t, -50.0, credit.TotalCharges, 0.001)
}
