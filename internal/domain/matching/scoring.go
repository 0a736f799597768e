package matching

import (
	"cmp"
	"math"
	"slices"
)

const defaultWeight = 0.25

// Weights are the relative importance of each sub-score. Each must lie in [0, 1]
// and at least one must be positive; the final score is normalised by their sum.
type Weights struct {
	Distance float64 `json:"distance"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Capacity float64 `json:"capacity"`
}

// DefaultWeights weighs the four sub-scores equally.
func DefaultWeights() Weights {
	return Weights{Distance: defaultWeight, Price: defaultWeight, Rating: defaultWeight, Capacity: defaultWeight}
}

// Validate rejects weights outside [0, 1] or weights that are all zero.
func (w Weights) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"distance", w.Distance},
		{"price", w.Price},
		{"rating", w.Rating},
		{"capacity", w.Capacity},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < 0 || c.value > 1 {
			return invalidf("%s weight %v must be within [0, 1]", c.name, c.value)
		}
	}
	if w.sum() == 0 {
		return invalidf("at least one weight must be positive")
	}

	return nil
}

func (w Weights) sum() float64 {
	return w.Distance + w.Price + w.Rating + w.Capacity
}

// SubScores are the normalised [0, 1] components of a candidate's score.
type SubScores struct {
	Distance    float64 `json:"distance"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	CapacityFit float64 `json:"capacity_fit"`
}

// RecommendationLevel buckets a score for display.
type RecommendationLevel string

const (
	RecommendationExcellent  RecommendationLevel = "EXCELLENT"
	RecommendationGood       RecommendationLevel = "GOOD"
	RecommendationAcceptable RecommendationLevel = "ACCEPTABLE"
	RecommendationPoor       RecommendationLevel = "POOR"
)

// LevelForScore maps a [0, 1] score to its recommendation level.
func LevelForScore(score float64) RecommendationLevel {
	switch {
	case score >= 0.85:
		return RecommendationExcellent
	case score >= 0.70:
		return RecommendationGood
	case score >= 0.50:
		return RecommendationAcceptable
	default:
		return RecommendationPoor
	}
}

// ScoredCandidate is a candidate with its composite score.
type ScoredCandidate struct {
	Candidate
	Score                  float64
	SubScores              SubScores
	Level                  RecommendationLevel
	EstimatedTravelMinutes float64
}

// ScoreAndRank scores every candidate and returns them best first.
// Equal scores are ordered by higher rating, then shorter distance, then the
// earlier announcement; remaining ties keep their input order.
func ScoreAndRank(candidates []Candidate, w Weights, maxDistanceKm float64) ([]ScoredCandidate, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(maxDistanceKm) || math.IsInf(maxDistanceKm, 0) || maxDistanceKm < 0 {
		return nil, invalidf("max distance %v must be a non-negative number", maxDistanceKm)
	}
	if maxDistanceKm == 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	maxPrice := 0.0
	for i, c := range candidates {
		if c.Announcement == nil || c.Deliverer == nil {
			return nil, invalidf("candidate %d is missing its announcement or deliverer", i)
		}
		if math.IsNaN(c.DistanceKm) || c.DistanceKm < 0 {
			return nil, invalidf("candidate %d has a negative distance", i)
		}
		if math.IsNaN(c.Announcement.Price) || c.Announcement.Price < 0 {
			return nil, invalidf("candidate %d has a negative price", i)
		}
		maxPrice = math.Max(maxPrice, c.Announcement.Price)
	}

	total := w.sum()
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		sub := subScores(c, maxDistanceKm, maxPrice)
		score := (w.Distance*sub.Distance + w.Price*sub.Price + w.Rating*sub.Rating + w.Capacity*sub.CapacityFit) / total

		scored = append(scored, ScoredCandidate{
			Candidate:              c,
			Score:                  score,
			SubScores:              sub,
			Level:                  LevelForScore(score),
			EstimatedTravelMinutes: EstimateTravelMinutes(c.DistanceKm),
		})
	}

	slices.SortStableFunc(scored, compareRanked)

	return scored, nil
}

func subScores(c Candidate, maxDistanceKm, maxPrice float64) SubScores {
	sub := SubScores{
		Distance: math.Max(0, 1-c.DistanceKm/maxDistanceKm),
		Rating:   clamp01(c.Deliverer.Rating / maxRating),
	}
	if maxPrice > 0 {
		sub.Price = c.Announcement.Price / maxPrice
	}
	if c.Deliverer.Vehicle.Fits(c.Announcement.Cargo) {
		sub.CapacityFit = 1
	}

	return sub
}

func compareRanked(a, b ScoredCandidate) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.SubScores.Rating, a.SubScores.Rating); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
		return c
	}

	return a.Announcement.CreatedAt.Compare(b.Announcement.CreatedAt)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return math.Min(1, math.Max(0, v))
}
