package controllers

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dangqh/seafresh/models"
)

// Period is a half-open calendar interval [Start, End)
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// PeriodRange computes the calendar boundaries for the period holding
// the anchor date and for the immediately preceding period of the same
// kind. Kind is one of day, month, quarter, year.
func PeriodRange(kind string, anchor time.Time) (current, previous Period, err error) {
	loc := anchor.Location()
	switch kind {
	case "day":
		start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, loc)
		current = Period{Start: start, End: start.AddDate(0, 0, 1)}
		previous = Period{Start: start.AddDate(0, 0, -1), End: start}
	case "month":
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		current = Period{Start: start, End: start.AddDate(0, 1, 0)}
		previous = Period{Start: start.AddDate(0, -1, 0), End: start}
	case "quarter":
		qMonth := time.Month((int(anchor.Month())-1)/3*3 + 1)
		start := time.Date(anchor.Year(), qMonth, 1, 0, 0, 0, 0, loc)
		current = Period{Start: start, End: start.AddDate(0, 3, 0)}
		previous = Period{Start: start.AddDate(0, -3, 0), End: start}
	case "year":
		start := time.Date(anchor.Year(), 1, 1, 0, 0, 0, 0, loc)
		current = Period{Start: start, End: start.AddDate(1, 0, 0)}
		previous = Period{Start: start.AddDate(-1, 0, 0), End: start}
	default:
		err = fmt.Errorf("unknown period kind %q", kind)
	}
	return current, previous, err
}

// GrowthPercent compares a value against the prior period. A zero
// previous value reports 100 when anything was earned and 0 otherwise;
// everything else is the exact percentage rounded to one decimal.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Round((current-previous)/previous*100*10) / 10
}

// deliveredRevenue sums product revenue (shipping excluded) over
// delivered orders
func deliveredRevenue(orders []models.Order) float64 {
	var revenue float64
	for i := range orders {
		if orders[i].Status == models.OrderStatusDelivered {
			revenue += orders[i].ProductRevenue()
		}
	}
	return revenue
}

// StatusBreakdown counts orders per status
func StatusBreakdown(orders []models.Order) map[string]int {
	breakdown := make(map[string]int)
	for i := range orders {
		breakdown[orders[i].Status]++
	}
	return breakdown
}

// ProductStat is one row of the top-products ranking
type ProductStat struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// TopProducts ranks products by revenue across delivered orders' line
// items, grouped by product name, descending. Ties keep a stable
// name order so the result is deterministic.
func TopProducts(orders []models.Order, limit int) []ProductStat {
	byName := make(map[string]*ProductStat)
	for i := range orders {
		if orders[i].Status != models.OrderStatusDelivered {
			continue
		}
		for _, item := range orders[i].Items {
			stat, ok := byName[item.Name]
			if !ok {
				stat = &ProductStat{Name: item.Name}
				byName[item.Name] = stat
			}
			stat.Revenue += item.Price * float64(item.Quantity)
			stat.Quantity += item.Quantity
		}
	}

	stats := make([]ProductStat, 0, len(byName))
	for _, stat := range byName {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Revenue != stats[j].Revenue {
			return stats[i].Revenue > stats[j].Revenue
		}
		return stats[i].Name < stats[j].Name
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// ChartBucket is one point of the revenue chart
type ChartBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// RevenueBuckets splits the current period's delivered orders into
// chart buckets: 24 hours for a day, one per calendar day for a month,
// 3 months for a quarter, 12 months for a year. Buckets are filled by
// filtering the already-fetched slice, not by extra queries.
func RevenueBuckets(kind string, period Period, orders []models.Order) []ChartBucket {
	delivered := make([]models.Order, 0, len(orders))
	for i := range orders {
		if orders[i].Status == models.OrderStatusDelivered {
			delivered = append(delivered, orders[i])
		}
	}

	var buckets []ChartBucket
	add := func(label string, match func(t time.Time) bool) {
		bucket := ChartBucket{Label: label}
		for i := range delivered {
			if match(delivered[i].CreatedAt) {
				bucket.Revenue += delivered[i].ProductRevenue()
				bucket.Orders++
			}
		}
		buckets = append(buckets, bucket)
	}

	switch kind {
	case "day":
		for hour := 0; hour < 24; hour++ {
			h := hour
			add(fmt.Sprintf("%02d:00", h), func(t time.Time) bool { return t.Hour() == h })
		}
	case "month":
		days := period.End.AddDate(0, 0, -1).Day()
		for day := 1; day <= days; day++ {
			d := day
			add(fmt.Sprintf("%02d", d), func(t time.Time) bool { return t.Day() == d })
		}
	case "quarter":
		for offset := 0; offset < 3; offset++ {
			month := period.Start.AddDate(0, offset, 0).Month()
			m := month
			add(fmt.Sprintf("T%d", int(m)), func(t time.Time) bool { return t.Month() == m })
		}
	case "year":
		for month := 1; month <= 12; month++ {
			m := time.Month(month)
			add(fmt.Sprintf("T%d", month), func(t time.Time) bool { return t.Month() == m })
		}
	}

	return buckets
}
