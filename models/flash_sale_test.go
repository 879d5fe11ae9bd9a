package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlashSaleIsRunning(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	sale := FlashSale{StartTime: start, EndTime: end, IsActive: true}

	assert.False(t, sale.IsRunning(start.Add(-time.Second)))
	assert.True(t, sale.IsRunning(start))
	assert.True(t, sale.IsRunning(start.Add(6*time.Hour)))
	// the window includes its end instant
	assert.True(t, sale.IsRunning(end))
	assert.False(t, sale.IsRunning(end.Add(time.Second)))

	sale.IsActive = false
	assert.False(t, sale.IsRunning(start.Add(6*time.Hour)))
}

func TestFlashSaleProductRemaining(t *testing.T) {
	fp := FlashSaleProduct{Quantity: 10, SoldCount: 4}
	assert.Equal(t, 6, fp.Remaining())

	fp.SoldCount = 10
	assert.Equal(t, 0, fp.Remaining())

	fp.SoldCount = 12
	assert.Equal(t, 0, fp.Remaining())
}
