package matching

import (
	"testing"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(distanceKm, price, rating float64) Candidate {
	d := newDeliverer(paris)
	d.Rating = rating

	return Candidate{
		Announcement: newAnnouncement(paris, price),
		Deliverer:    d,
		DistanceKm:   distanceKm,
	}
}

func rankedIDs(ranked []ScoredCandidate) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Announcement.ID)
	}

	return ids
}

func TestScoreAndRank_CloserBeatsPricier(t *testing.T) {
	a := candidate(2, 20, 4.0)
	b := candidate(20, 30, 4.0)

	ranked, err := ScoreAndRank([]Candidate{b, a}, DefaultWeights(), 50)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, a.Announcement.ID, ranked[0].Announcement.ID)
	assert.InDelta(t, (0.96+20.0/30.0+0.8+1)/4, ranked[0].Score, 1e-9)
	assert.InDelta(t, (0.6+1+0.8+1)/4, ranked[1].Score, 1e-9)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestScoreAndRank_Idempotent(t *testing.T) {
	input := []Candidate{candidate(12, 30, 3.5), candidate(2, 20, 4.0), candidate(2, 20, 4.0), candidate(40, 80, 5.0)}
	snapshot := append([]Candidate(nil), input...)

	first, err := ScoreAndRank(input, DefaultWeights(), 50)
	require.NoError(t, err)
	second, err := ScoreAndRank(input, DefaultWeights(), 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, input)
}

func TestScoreAndRank_SubScores(t *testing.T) {
	c := candidate(10, 40, 4.5)
	c.Announcement.Cargo = entity.Cargo{WeightKg: 500}

	ranked, err := ScoreAndRank([]Candidate{c}, DefaultWeights(), 50)
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	sub := ranked[0].SubScores
	assert.InDelta(t, 0.8, sub.Distance, 1e-9)
	assert.InDelta(t, 1.0, sub.Price, 1e-9)
	assert.InDelta(t, 0.9, sub.Rating, 1e-9)
	assert.Zero(t, sub.CapacityFit, "500 kg does not fit a 100 kg car")
	assert.InDelta(t, 0.675, ranked[0].Score, 1e-9)
	assert.InDelta(t, 10.0/45*60, ranked[0].EstimatedTravelMinutes, 1e-9)
	assert.Equal(t, RecommendationAcceptable, ranked[0].Level)
}

func TestScoreAndRank_TieBreaks(t *testing.T) {
	priceOnly := Weights{Price: 1}

	t.Run("higher rating first", func(t *testing.T) {
		x := candidate(5, 10, 4.8)
		y := candidate(5, 10, 4.2)

		ranked, err := ScoreAndRank([]Candidate{y, x}, priceOnly, 50)
		require.NoError(t, err)
		assert.Equal(t, ranked[0].Score, ranked[1].Score)
		assert.Equal(t, []uuid.UUID{x.Announcement.ID, y.Announcement.ID}, rankedIDs(ranked))
	})

	t.Run("then shorter distance", func(t *testing.T) {
		near := candidate(3, 10, 4.0)
		far := candidate(9, 10, 4.0)

		ranked, err := ScoreAndRank([]Candidate{far, near}, priceOnly, 50)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{near.Announcement.ID, far.Announcement.ID}, rankedIDs(ranked))
	})

	t.Run("then earlier announcement", func(t *testing.T) {
		older := candidate(3, 10, 4.0)
		newer := candidate(3, 10, 4.0)
		newer.Announcement.CreatedAt = older.Announcement.CreatedAt.Add(time.Hour)

		ranked, err := ScoreAndRank([]Candidate{newer, older}, priceOnly, 50)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{older.Announcement.ID, newer.Announcement.ID}, rankedIDs(ranked))
	})

	t.Run("then input order", func(t *testing.T) {
		first := candidate(3, 10, 4.0)
		second := candidate(3, 10, 4.0)

		ranked, err := ScoreAndRank([]Candidate{first, second}, DefaultWeights(), 50)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first.Announcement.ID, second.Announcement.ID}, rankedIDs(ranked))
	})
}

func TestScoreAndRank_ScoresStayWithinUnitInterval(t *testing.T) {
	candidates := make([]Candidate, 0, 30)
	for i := range 30 {
		c := candidate(float64(i*3), float64(i%5)*12, float64(i%6))
		if i%4 == 0 {
			c.Announcement.Cargo = entity.Cargo{WeightKg: 250}
		}
		candidates = append(candidates, c)
	}

	for _, w := range []Weights{DefaultWeights(), {Distance: 1}, {Price: 0.3, Rating: 1}, {Capacity: 0.1}} {
		ranked, err := ScoreAndRank(candidates, w, 50)
		require.NoError(t, err)
		require.Len(t, ranked, len(candidates))

		for i, r := range ranked {
			assert.GreaterOrEqual(t, r.Score, 0.0)
			assert.LessOrEqual(t, r.Score, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, ranked[i-1].Score, r.Score)
			}
		}
	}
}

func TestScoreAndRank_ZeroPricesScoreZero(t *testing.T) {
	ranked, err := ScoreAndRank([]Candidate{candidate(1, 0, 5), candidate(2, 0, 5)}, DefaultWeights(), 50)
	require.NoError(t, err)

	for _, r := range ranked {
		assert.Zero(t, r.SubScores.Price)
	}
}

func TestScoreAndRank_EmptyInput(t *testing.T) {
	ranked, err := ScoreAndRank(nil, DefaultWeights(), 50)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestScoreAndRank_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		weights    Weights
		maxKm      float64
	}{
		{name: "all zero weights", weights: Weights{}},
		{name: "weight above one", weights: Weights{Distance: 1.5}},
		{name: "negative weight", weights: Weights{Distance: 0.5, Price: -0.1}},
		{name: "negative max distance", weights: DefaultWeights(), maxKm: -1},
		{name: "negative candidate distance", weights: DefaultWeights(), candidates: []Candidate{candidate(-1, 10, 4)}},
		{name: "negative price", weights: DefaultWeights(), candidates: []Candidate{candidate(1, -10, 4)}},
		{name: "missing deliverer", weights: DefaultWeights(), candidates: []Candidate{{Announcement: newAnnouncement(paris, 1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, err := ScoreAndRank(tt.candidates, tt.weights, tt.maxKm)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, ranked)
		})
	}
}

func TestLevelForScore(t *testing.T) {
	assert.Equal(t, RecommendationExcellent, LevelForScore(0.85))
	assert.Equal(t, RecommendationGood, LevelForScore(0.7))
	assert.Equal(t, RecommendationAcceptable, LevelForScore(0.5))
	assert.Equal(t, RecommendationPoor, LevelForScore(0.49))
}
