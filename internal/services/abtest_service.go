package services

import (
	"context"
	"sync"
	"time"

	"github.com/adpilot/dashboard/internal/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Variant slots
const (
	VariantA = "a"
	VariantB = "b"
)

// Variant records an uploaded creative for one side of the test. Only the
// file metadata is kept; the content never matters to the simulation.
type Variant struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type ABMetric struct {
	Name     string  `json:"name"`
	VariantA float64 `json:"variantA"`
	VariantB float64 `json:"variantB"`
}

type TrafficShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ABSummary struct {
	Winner          string  `json:"winner"`
	ConfidenceLevel int     `json:"confidenceLevel"`
	Improvement     float64 `json:"improvement"`
	SampleSize      int     `json:"sampleSize"`
}

type ABResult struct {
	Summary      ABSummary      `json:"summary"`
	Metrics      []ABMetric     `json:"metrics"`
	TrafficSplit []TrafficShare `json:"trafficSplit"`
	CompletedAt  time.Time      `json:"completedAt"`
}

// simulationResult is the canned outcome every run produces. There is no
// statistics engine behind it; the module exists to exercise the flow.
var simulationResult = ABResult{
	Summary: ABSummary{
		Winner:          "Variant B",
		ConfidenceLevel: 95,
		Improvement:     23.5,
		SampleSize:      10000,
	},
	Metrics: []ABMetric{
		{Name: "Click Rate", VariantA: 3.2, VariantB: 4.1},
		{Name: "Conversion", VariantA: 2.1, VariantB: 2.6},
		{Name: "Engagement", VariantA: 5.8, VariantB: 7.2},
		{Name: "Bounce Rate", VariantA: 45.2, VariantB: 38.7},
	},
	TrafficSplit: []TrafficShare{
		{Name: "Variant A", Value: 5000},
		{Name: "Variant B", Value: 5000},
	},
}

// ABTestService runs the simulated A/B comparison. The run is the one
// asynchronous operation in the system: it resolves after a configurable
// delay, and a result that lands after the user reset or restarted the test
// is recognized as stale by its run id and dropped.
type ABTestService struct {
	delay     time.Duration
	publisher events.Publisher
	log       *zap.Logger

	mu       sync.RWMutex
	variants map[string]Variant
	running  bool
	runID    string
	result   *ABResult
}

func NewABTestService(delay time.Duration, publisher events.Publisher, log *zap.Logger) *ABTestService {
	return &ABTestService{
		delay:     delay,
		publisher: publisher,
		log:       log,
		variants:  make(map[string]Variant),
	}
}

// RegisterVariant stores the uploaded creative's metadata in a slot.
func (s *ABTestService) RegisterVariant(slot, name string, size int64, contentType string) error {
	if slot != VariantA && slot != VariantB {
		return &ValidationError{Field: "variant", Reason: "must be \"a\" or \"b\""}
	}
	if name == "" {
		return requiredField("name")
	}

	s.mu.Lock()
	s.variants[slot] = Variant{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		UploadedAt:  time.Now(),
	}
	s.mu.Unlock()
	return nil
}

// Run starts a simulation. Both variants must be uploaded and no run may
// already be in flight.
func (s *ABTestService) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return &ValidationError{Field: "test", Reason: "is already running"}
	}
	if _, ok := s.variants[VariantA]; !ok {
		s.mu.Unlock()
		return requiredField("variant a")
	}
	if _, ok := s.variants[VariantB]; !ok {
		s.mu.Unlock()
		return requiredField("variant b")
	}

	runID := uuid.New().String()
	s.running = true
	s.runID = runID
	s.result = nil
	s.mu.Unlock()

	go s.simulate(ctx, runID)
	return nil
}

func (s *ABTestService) simulate(ctx context.Context, runID string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.delay):
	}

	result := simulationResult
	result.CompletedAt = time.Now()

	s.mu.Lock()
	if s.runID != runID {
		// The user reset or restarted while we slept.
		s.mu.Unlock()
		s.log.Debug("stale simulation result dropped", zap.String("run_id", runID))
		return
	}
	s.running = false
	s.result = &result
	s.mu.Unlock()

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.StreamCampaigns, events.Event{
			Type:    events.EventABTestCompleted,
			Payload: map[string]any{"winner": result.Summary.Winner},
		})
	}
	s.log.Info("ab test simulation completed", zap.String("winner", result.Summary.Winner))
}

// Status reports the variants and whether a run is in flight.
func (s *ABTestService) Status() (map[string]Variant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Variant, len(s.variants))
	for k, v := range s.variants {
		out[k] = v
	}
	return out, s.running
}

// Result returns the completed outcome, or nil while pending or unset.
func (s *ABTestService) Result() *ABResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// Reset clears variants and any pending run. A simulation still in flight
// becomes stale and its result is ignored.
func (s *ABTestService) Reset() {
	s.mu.Lock()
	s.variants = make(map[string]Variant)
	s.running = false
	s.runID = ""
	s.result = nil
	s.mu.Unlock()
}
