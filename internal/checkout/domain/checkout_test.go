package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_LinearForward(t *testing.T) {
	c := NewCheckout("u1")
	assert.Equal(t, StepShipping, c.Step)

	require.NoError(t, c.Continue())
	assert.Equal(t, StepPayment, c.Step)

	require.NoError(t, c.Continue())
	assert.Equal(t, StepReview, c.Step)

	assert.ErrorIs(t, c.Continue(), ErrAtFinalStep)
	assert.Equal(t, StepReview, c.Step)
}

func TestCheckout_BackStopsAtShipping(t *testing.T) {
	c := NewCheckout("u1")
	require.NoError(t, c.Continue())
	require.NoError(t, c.Continue())

	require.NoError(t, c.Back())
	assert.Equal(t, StepPayment, c.Step)

	require.NoError(t, c.Back())
	assert.Equal(t, StepShipping, c.Step)

	// 初始步骤继续后退为空操作
	require.NoError(t, c.Back())
	assert.Equal(t, StepShipping, c.Step)
}

func TestCheckout_StartProcessingOnlyFromReview(t *testing.T) {
	c := NewCheckout("u1")

	assert.ErrorIs(t, c.StartProcessing(), ErrNotAtReview)

	require.NoError(t, c.Continue())
	require.NoError(t, c.Continue())
	require.NoError(t, c.StartProcessing())
	assert.True(t, c.Processing)

	assert.ErrorIs(t, c.StartProcessing(), ErrAlreadyProcessing)
	assert.ErrorIs(t, c.Continue(), ErrAlreadyProcessing)
	assert.ErrorIs(t, c.Back(), ErrAlreadyProcessing)
}

func TestCheckout_AbortReturnsToReview(t *testing.T) {
	c := NewCheckout("u1")
	require.NoError(t, c.Continue())
	require.NoError(t, c.Continue())
	require.NoError(t, c.StartProcessing())

	c.AbortProcessing()

	assert.False(t, c.Processing)
	assert.Equal(t, StepReview, c.Step)
	assert.NoError(t, c.StartProcessing())
}

func TestComputeTotals_ShippingWaivedOverThreshold(t *testing.T) {
	totals := ComputeTotals(decimal.NewFromInt(299))

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(299)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(23.92)))
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(322.92)))
}

func TestComputeTotals_ShippingChargedBelowThreshold(t *testing.T) {
	totals := ComputeTotals(decimal.NewFromInt(45))

	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(3.6)))
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(15)))
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(63.6)))
}
