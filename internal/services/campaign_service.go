package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adpilot/dashboard/internal/analysis"
	"github.com/adpilot/dashboard/internal/events"
	"github.com/adpilot/dashboard/internal/format"
	"github.com/adpilot/dashboard/internal/models"
	"github.com/adpilot/dashboard/internal/storage"
	"go.uber.org/zap"
)

// Aggregate are the dashboard headline numbers, computed fresh from the
// collection on every call.
type Aggregate struct {
	TotalCampaigns  int     `json:"totalCampaigns"`
	ActiveCampaigns int     `json:"activeCampaigns"`
	TotalBudget     float64 `json:"totalBudget"`
	AvgSuccessRate  int     `json:"avgSuccessRate"`
}

// CampaignService owns the campaign collection. It is the only component
// that mutates it: an in-memory slice ordered newest-first, re-serialized
// in full to the persistence adapter on every mutation. A persistence
// failure is logged and the session continues in memory.
type CampaignService struct {
	store     storage.Store
	scorer    analysis.Scorer
	publisher events.Publisher
	log       *zap.Logger

	mu        sync.RWMutex
	campaigns []models.Campaign
}

func NewCampaignService(
	store storage.Store,
	scorer analysis.Scorer,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		store:     store,
		scorer:    scorer,
		publisher: publisher,
		log:       log,
	}
}

// Hydrate loads the persisted collection. An absent or unreadable entry
// means an empty collection, never an error to the caller.
func (s *CampaignService) Hydrate(ctx context.Context) {
	var saved []models.Campaign
	ok, err := s.store.Load(ctx, storage.KeyCampaigns, &saved)
	if err != nil {
		s.log.Warn("campaigns not restored", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	s.mu.Lock()
	s.campaigns = saved
	s.mu.Unlock()
	s.log.Info("campaigns restored", zap.Int("count", len(saved)))
}

// Create validates the input, attaches the generated analysis and prepends
// the new record. The analysis is set here, exactly once; later edits never
// recompute it.
func (s *CampaignService) Create(ctx context.Context, input models.CampaignInput) (*models.Campaign, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	c := models.Campaign{
		Name:           strings.TrimSpace(input.Name),
		Budget:         input.Budget,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Objective:      input.Objective,
		TargetAudience: input.TargetAudience,
		Channels:       input.Channels,
		Goals:          input.Goals,
		Status:         models.CampaignStatusDraft,
		CreatedAt:      time.Now(),
	}

	s.mu.Lock()
	c.ID = s.nextIDLocked()
	score := s.scorer.Score(c)
	c.AIAnalysis = &score
	s.campaigns = append([]models.Campaign{c}, s.campaigns...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.EventCampaignCreated, c.ID)
	s.log.Info("campaign created", zap.String("id", c.ID), zap.String("name", c.Name))
	return &c, nil
}

// Update merges the patch into the stored record. Nested sub-objects merge
// key by key; the attached analysis is untouched.
func (s *CampaignService) Update(ctx context.Context, id string, patch models.CampaignPatch) (*models.Campaign, error) {
	if patch.Status != nil && !models.IsValidStatus(*patch.Status) {
		return nil, &ValidationError{Field: "status", Reason: "is not a valid status"}
	}
	if patch.Objective != nil && !models.IsValidObjective(*patch.Objective) {
		return nil, &ValidationError{Field: "objective", Reason: "is not a valid objective"}
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	updated := patch.Apply(s.campaigns[idx])
	s.campaigns[idx] = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.EventCampaignUpdated, id)
	return &updated, nil
}

// Delete removes the record if present and reports whether it did.
// Deleting an absent id is a no-op, so repeated deletes are idempotent.
func (s *CampaignService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.campaigns = append(s.campaigns[:idx], s.campaigns[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.EventCampaignDeleted, id)
	s.log.Info("campaign deleted", zap.String("id", id))
	return true
}

func (s *CampaignService) FindByID(id string) (*models.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, false
	}
	c := s.campaigns[idx]
	return &c, true
}

// List returns a copy of the collection, newest first.
func (s *CampaignService) List() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out
}

// Aggregate computes the headline stats. An empty collection yields all
// zeros; the average never divides by zero.
func (s *CampaignService) Aggregate() Aggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agg := Aggregate{TotalCampaigns: len(s.campaigns)}
	successTotal := 0
	for _, c := range s.campaigns {
		if c.Status == models.CampaignStatusActive {
			agg.ActiveCampaigns++
		}
		agg.TotalBudget += format.ParseAmount(c.Budget)
		if c.AIAnalysis != nil {
			successTotal += c.AIAnalysis.SuccessProbability
		}
	}
	if len(s.campaigns) > 0 {
		agg.AvgSuccessRate = int(float64(successTotal)/float64(len(s.campaigns)) + 0.5)
	}
	return agg
}

// nextIDLocked issues a unix-milli id, bumping on collision so two creates
// in the same millisecond stay unique.
func (s *CampaignService) nextIDLocked() string {
	ms := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if s.indexLocked(id) < 0 {
			return id
		}
		ms++
	}
}

func (s *CampaignService) indexLocked(id string) int {
	for i, c := range s.campaigns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the whole collection under its single key.
// Failures degrade to in-memory operation.
func (s *CampaignService) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, storage.KeyCampaigns, s.campaigns); err != nil {
		s.log.Warn("campaigns not persisted, continuing in memory", zap.Error(err))
	}
}

func (s *CampaignService) publish(ctx context.Context, eventType, id string) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, events.StreamCampaigns, events.Event{
		Type:    eventType,
		Payload: map[string]any{"campaign_id": id},
	})
}

func validateInput(input models.CampaignInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return requiredField("name")
	}
	if strings.TrimSpace(input.Budget) == "" {
		return requiredField("budget")
	}
	if strings.TrimSpace(input.StartDate) == "" {
		return requiredField("startDate")
	}
	if strings.TrimSpace(input.EndDate) == "" {
		return requiredField("endDate")
	}
	if input.Objective != "" && !models.IsValidObjective(input.Objective) {
		return &ValidationError{Field: "objective", Reason: "is not a valid objective"}
	}
	return nil
}
