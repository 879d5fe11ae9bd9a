package utils

import "math"

// TierRule maps a cumulative-spend threshold to the fixed-value coupon
// it unlocks
type TierRule struct {
	Threshold float64 `json:"threshold"`
	Discount  float64 `json:"discount"`
	Name      string  `json:"name"`
}

// TierRules lists the membership tiers in ascending threshold order
var TierRules = []TierRule{
	{Threshold: 500000, Discount: 20000, Name: "Bạc"},
	{Threshold: 1000000, Discount: 40000, Name: "Vàng"},
	{Threshold: 2000000, Discount: 80000, Name: "Kim Cương"},
}

// TierForSpend returns the highest threshold the spend has reached,
// 0 when below the first tier
func TierForSpend(totalSpent float64) float64 {
	level := 0.0
	for _, rule := range TierRules {
		if totalSpent >= rule.Threshold {
			level = rule.Threshold
		}
	}
	return level
}

// TierName returns the display name for a tier level, empty for the
// base level
func TierName(level float64) string {
	for _, rule := range TierRules {
		if rule.Threshold == level {
			return rule.Name
		}
	}
	return ""
}

// NextTier returns the first rule the spend has not reached yet, nil
// once the top tier is held
func NextTier(totalSpent float64) *TierRule {
	for i := range TierRules {
		if totalSpent < TierRules[i].Threshold {
			return &TierRules[i]
		}
	}
	return nil
}

// TierProgress reports the amount remaining to the next tier and the
// progress bar percentage, capped at 100. A nil next tier means the
// top tier is held and both values are zero-valued accordingly.
func TierProgress(totalSpent float64) (remaining float64, percent float64) {
	next := NextTier(totalSpent)
	if next == nil {
		return 0, 100
	}
	remaining = next.Threshold - totalSpent
	percent = math.Min(100, totalSpent/next.Threshold*100)
	return remaining, percent
}

// CrossedTiers returns the rules whose thresholds lie in
// (previousSpent, newSpent], i.e. the tiers a spend increase just
// unlocked
func CrossedTiers(previousSpent, newSpent float64) []TierRule {
	var crossed []TierRule
	for _, rule := range TierRules {
		if previousSpent < rule.Threshold && newSpent >= rule.Threshold {
			crossed = append(crossed, rule)
		}
	}
	return crossed
}
