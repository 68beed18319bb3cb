package analysis

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/adpilot/dashboard/internal/format"
	"github.com/adpilot/dashboard/internal/models"
)

// Scorer produces the derived analysis attached to a campaign at creation.
// The campaign store depends only on this interface, so the sampled scorer
// below can be swapped for a real model without touching the store.
type Scorer interface {
	Score(c models.Campaign) models.Analysis
}

// RandomScorer samples plausible-looking scores. It stands in for a real
// scoring model; the output shape is fixed, only the values vary.
type RandomScorer struct {
	rng *rand.Rand
}

func NewRandomScorer() *RandomScorer {
	return NewRandomScorerWithSeed(time.Now().UnixNano())
}

// NewRandomScorerWithSeed pins the sample sequence, for tests.
func NewRandomScorerWithSeed(seed int64) *RandomScorer {
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomScorer) Score(_ models.Campaign) models.Analysis {
	qualities := []string{
		models.AudienceQualityExcellent,
		models.AudienceQualityGood,
		models.AudienceQualityFair,
	}
	risks := []string{
		models.RiskLevelLow,
		models.RiskLevelMedium,
		models.RiskLevelHigh,
	}

	return models.Analysis{
		SuccessProbability:  s.rng.Intn(40) + 60,
		PredictedROI:        strconv.Itoa(s.rng.Intn(200)+200) + "%",
		AudienceQuality:     qualities[s.rng.Intn(len(qualities))],
		RiskLevel:           risks[s.rng.Intn(len(risks))],
		AudienceMatch:       s.rng.Intn(30) + 70,
		BudgetEfficiency:    s.rng.Intn(30) + 70,
		ChannelOptimization: s.rng.Intn(30) + 70,
		TimingScore:         s.rng.Intn(30) + 60,
		EstimatedReach:      format.FormatCount((s.rng.Intn(100) + 50) * 1000),
	}
}
