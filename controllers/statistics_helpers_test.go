package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangqh/seafresh/models"
)

func TestPeriodRangeDay(t *testing.T) {
	anchor := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	current, previous, err := PeriodRange("day", anchor)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), current.Start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), current.End)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), previous.Start)
	assert.Equal(t, current.Start, previous.End)
}

func TestPeriodRangeMonth(t *testing.T) {
	anchor := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	current, previous, err := PeriodRange("month", anchor)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), current.Start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), current.End)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), previous.Start)
}

func TestPeriodRangeQuarter(t *testing.T) {
	anchor := time.Date(2026, 5, 10, 0, 0, 0, 0, time.Local)
	current, previous, err := PeriodRange("quarter", anchor)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), current.Start)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local), current.End)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), previous.Start)
}

func TestPeriodRangeYear(t *testing.T) {
	anchor := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	current, previous, err := PeriodRange("year", anchor)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), current.Start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local), current.End)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), previous.Start)
}

func TestPeriodRangeUnknownKind(t *testing.T) {
	_, _, err := PeriodRange("week", time.Now())
	assert.Error(t, err)
}

func TestPeriodContainsHalfOpen(t *testing.T) {
	current, _, err := PeriodRange("day", time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.True(t, current.Contains(current.Start))
	assert.True(t, current.Contains(current.End.Add(-time.Second)))
	assert.False(t, current.Contains(current.End))
	assert.False(t, current.Contains(current.Start.Add(-time.Second)))
}

func TestGrowthPercentConventions(t *testing.T) {
	assert.Equal(t, 0.0, GrowthPercent(0, 0))
	assert.Equal(t, 100.0, GrowthPercent(50000, 0))
	assert.Equal(t, 50.0, GrowthPercent(150, 100))
	assert.Equal(t, -25.0, GrowthPercent(75, 100))
	// rounded to one decimal
	assert.Equal(t, 33.3, GrowthPercent(400, 300))
}

func deliveredOrder(created time.Time, total, shipping float64, items ...models.OrderItem) models.Order {
	return models.Order{
		Status:      models.OrderStatusDelivered,
		TotalAmount: total,
		ShippingFee: shipping,
		CreatedAt:   created,
		Items:       items,
	}
}

func TestDeliveredRevenueExcludesShippingAndUndelivered(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		deliveredOrder(now, 290000, 40000),
		deliveredOrder(now, 500000, 0),
		{Status: models.OrderStatusPending, TotalAmount: 100000, CreatedAt: now},
		{Status: models.OrderStatusCancelled, TotalAmount: 100000, CreatedAt: now},
	}

	assert.Equal(t, 750000.0, deliveredRevenue(orders))
}

func TestStatusBreakdown(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusDelivered},
		{Status: models.OrderStatusCancelled},
	}

	breakdown := StatusBreakdown(orders)
	assert.Equal(t, 2, breakdown[models.OrderStatusPending])
	assert.Equal(t, 1, breakdown[models.OrderStatusDelivered])
	assert.Equal(t, 1, breakdown[models.OrderStatusCancelled])
	assert.Equal(t, 0, breakdown[models.OrderStatusShipping])
}

func TestTopProductsGroupsByNameAndRanksByRevenue(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		deliveredOrder(now, 0, 0,
			models.OrderItem{Name: "Tôm sú", Price: 100000, Quantity: 2},
			models.OrderItem{Name: "Cá hồi", Price: 150000, Quantity: 1},
		),
		deliveredOrder(now, 0, 0,
			models.OrderItem{Name: "Tôm sú", Price: 100000, Quantity: 1},
		),
		// pending orders don't count towards the ranking
		{Status: models.OrderStatusPending, CreatedAt: now, Items: []models.OrderItem{
			{Name: "Mực ống", Price: 900000, Quantity: 5},
		}},
	}

	stats := TopProducts(orders, 5)
	require.Len(t, stats, 2)
	assert.Equal(t, "Tôm sú", stats[0].Name)
	assert.Equal(t, 300000.0, stats[0].Revenue)
	assert.Equal(t, 3, stats[0].Quantity)
	assert.Equal(t, "Cá hồi", stats[1].Name)
}

func TestTopProductsLimitAndTieBreak(t *testing.T) {
	now := time.Now()
	var items []models.OrderItem
	for _, name := range []string{"F", "A", "C", "E", "B", "D"} {
		items = append(items, models.OrderItem{Name: name, Price: 10000, Quantity: 1})
	}
	orders := []models.Order{deliveredOrder(now, 0, 0, items...)}

	stats := TopProducts(orders, 5)
	require.Len(t, stats, 5)
	// equal revenue falls back to name order
	assert.Equal(t, "A", stats[0].Name)
	assert.Equal(t, "E", stats[4].Name)
}

func TestRevenueBucketsDay(t *testing.T) {
	current, _, err := PeriodRange("day", time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	orders := []models.Order{
		deliveredOrder(time.Date(2026, 3, 15, 9, 15, 0, 0, time.Local), 140000, 40000),
		deliveredOrder(time.Date(2026, 3, 15, 9, 45, 0, 0, time.Local), 240000, 40000),
		deliveredOrder(time.Date(2026, 3, 15, 18, 0, 0, 0, time.Local), 540000, 0),
		{Status: models.OrderStatusPending, TotalAmount: 100000, CreatedAt: time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)},
	}

	buckets := RevenueBuckets("day", current, orders)
	require.Len(t, buckets, 24)
	assert.Equal(t, "09:00", buckets[9].Label)
	assert.Equal(t, 300000.0, buckets[9].Revenue)
	assert.Equal(t, 2, buckets[9].Orders)
	assert.Equal(t, 540000.0, buckets[18].Revenue)
	assert.Equal(t, 0.0, buckets[0].Revenue)
}

func TestRevenueBucketsMonthLengths(t *testing.T) {
	feb, _, err := PeriodRange("month", time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, RevenueBuckets("month", feb, nil), 28)

	leapFeb, _, err := PeriodRange("month", time.Date(2028, 2, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, RevenueBuckets("month", leapFeb, nil), 29)

	jan, _, err := PeriodRange("month", time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	buckets := RevenueBuckets("month", jan, nil)
	require.Len(t, buckets, 31)
	assert.Equal(t, "01", buckets[0].Label)
	assert.Equal(t, "31", buckets[30].Label)
}

func TestRevenueBucketsQuarter(t *testing.T) {
	current, _, err := PeriodRange("quarter", time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	orders := []models.Order{
		deliveredOrder(time.Date(2026, 4, 10, 9, 0, 0, 0, time.Local), 100000, 0),
		deliveredOrder(time.Date(2026, 6, 20, 9, 0, 0, 0, time.Local), 200000, 0),
	}

	buckets := RevenueBuckets("quarter", current, orders)
	require.Len(t, buckets, 3)
	assert.Equal(t, "T4", buckets[0].Label)
	assert.Equal(t, 100000.0, buckets[0].Revenue)
	assert.Equal(t, 0.0, buckets[1].Revenue)
	assert.Equal(t, "T6", buckets[2].Label)
	assert.Equal(t, 200000.0, buckets[2].Revenue)
}

func TestRevenueBucketsYear(t *testing.T) {
	current, _, err := PeriodRange("year", time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	orders := []models.Order{
		deliveredOrder(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local), 100000, 0),
		deliveredOrder(time.Date(2026, 12, 24, 9, 0, 0, 0, time.Local), 300000, 0),
	}

	buckets := RevenueBuckets("year", current, orders)
	require.Len(t, buckets, 12)
	assert.Equal(t, "T1", buckets[0].Label)
	assert.Equal(t, 100000.0, buckets[0].Revenue)
	assert.Equal(t, "T12", buckets[11].Label)
	assert.Equal(t, 300000.0, buckets[11].Revenue)
}
