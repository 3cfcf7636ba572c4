package model

// Tier describes loyalty level derived from accumulated points.
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

const (
	silverThreshold int64 = 50
	goldThreshold   int64 = 100
)

// TierForPoints maps a points total to its tier.
func TierForPoints(points int64) Tier {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
