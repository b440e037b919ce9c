package models

// Tier buckets a score into the engagement band that picks a lead's
// leading insights.
type Tier string

const (
	TierHigh     Tier = "high"
	TierModerate Tier = "moderate"
	TierEmerging Tier = "emerging"
)

const (
	highTierFloor     = 80
	moderateTierFloor = 70
)

func TierFor(score int) Tier {
	switch {
	case score >= highTierFloor:
		return TierHigh
	case score >= moderateTierFloor:
		return TierModerate
	default:
		return TierEmerging
	}
}

func (t Tier) String() string {
	return string(t)
}
