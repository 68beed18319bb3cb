package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adpilot/dashboard/internal/analysis"
	"github.com/adpilot/dashboard/internal/models"
	"github.com/adpilot/dashboard/internal/storage"
	"go.uber.org/zap"
)

func newTestCampaignService(store storage.Store) *CampaignService {
	return NewCampaignService(store, analysis.NewRandomScorerWithSeed(1), nil, zap.NewNop())
}

func validInput(name string) models.CampaignInput {
	return models.CampaignInput{
		Name:      name,
		Budget:    "10000",
		StartDate: "2024-01-01",
		EndDate:   "2024-02-01",
		Objective: models.ObjectiveSales,
		Channels:  models.Channels{Social: true},
	}
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	svc := newTestCampaignService(storage.NewMemoryStore())

	created, err := svc.Create(ctx, validInput("Launch"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Error("no id assigned")
	}
	if created.Status != models.CampaignStatusDraft {
		t.Errorf("status = %q, want draft", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if created.AIAnalysis == nil {
		t.Fatal("no analysis attached")
	}
	if p := created.AIAnalysis.SuccessProbability; p < 60 || p > 100 {
		t.Errorf("SuccessProbability %d out of [60,100]", p)
	}

	list := svc.List()
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("created campaign not first in list: %+v", list)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.CampaignInput
	}{
		{"missing name", models.CampaignInput{Budget: "1", StartDate: "2024-01-01", EndDate: "2024-02-01"}},
		{"missing budget", models.CampaignInput{Name: "x", StartDate: "2024-01-01", EndDate: "2024-02-01"}},
		{"missing start date", models.CampaignInput{Name: "x", Budget: "1", EndDate: "2024-02-01"}},
		{"missing end date", models.CampaignInput{Name: "x", Budget: "1", StartDate: "2024-01-01"}},
		{"blank name", models.CampaignInput{Name: "   ", Budget: "1", StartDate: "2024-01-01", EndDate: "2024-02-01"}},
		{"bad objective", func() models.CampaignInput {
			in := validInput("x")
			in.Objective = "world-domination"
			return in
		}()},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCampaignService(storage.NewMemoryStore())
			_, err := svc.Create(ctx, tt.input)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if len(svc.List()) != 0 {
				t.Error("partial record created after failed validation")
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestCampaignService(storage.NewMemoryStore())

	first, _ := svc.Create(ctx, validInput("first"))
	second, _ := svc.Create(ctx, validInput("second"))
	third, _ := svc.Create(ctx, validInput("third"))

	list := svc.List()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID != third.ID || list[1].ID != second.ID || list[2].ID != first.ID {
		t.Errorf("order not newest-first: %s %s %s", list[0].Name, list[1].Name, list[2].Name)
	}

	if first.ID == second.ID || second.ID == third.ID {
		t.Error("ids collide")
	}
}

func TestUpdateCampaign(t *testing.T) {
	ctx := context.Background()
	svc := newTestCampaignService(storage.NewMemoryStore())

	created, _ := svc.Create(ctx, models.CampaignInput{
		Name:      "Launch",
		Budget:    "10000",
		StartDate: "2024-01-01",
		EndDate:   "2024-02-01",
		Channels:  models.Channels{Social: true},
		TargetAudience: models.TargetAudience{
			AgeRange: "25-45", Interests: "tech",
		},
	})

	t.Run("nested merge keeps siblings", func(t *testing.T) {
		email := true
		updated, err := svc.Update(ctx, created.ID, models.CampaignPatch{
			Channels: &models.ChannelsPatch{Email: &email},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if !updated.Channels.Email || !updated.Channels.Social {
			t.Errorf("channels = %+v, want social and email true", updated.Channels)
		}
		if updated.TargetAudience.Interests != "tech" {
			t.Errorf("unrelated nested object changed: %+v", updated.TargetAudience)
		}
	})

	t.Run("analysis untouched by edit", func(t *testing.T) {
		before := *created.AIAnalysis
		status := models.CampaignStatusActive
		updated, err := svc.Update(ctx, created.ID, models.CampaignPatch{Status: &status})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.AIAnalysis == nil || *updated.AIAnalysis != before {
			t.Error("analysis recomputed by edit")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", models.CampaignPatch{})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "archived"
		_, err := svc.Update(ctx, created.ID, models.CampaignPatch{Status: &status})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("got %v, want ValidationError", err)
		}
	})
}

func TestDeleteCampaign(t *testing.T) {
	ctx := context.Background()
	svc := newTestCampaignService(storage.NewMemoryStore())

	created, _ := svc.Create(ctx, validInput("Launch"))

	if !svc.Delete(ctx, created.ID) {
		t.Error("delete reported not found for existing id")
	}
	if _, ok := svc.FindByID(created.ID); ok {
		t.Error("campaign still findable after delete")
	}

	// Idempotent: second delete is a silent no-op.
	if svc.Delete(ctx, created.ID) {
		t.Error("second delete reported a removal")
	}
	if svc.Delete(ctx, "never-existed") {
		t.Error("delete of unknown id reported a removal")
	}
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc := newTestCampaignService(storage.NewMemoryStore())
		agg := svc.Aggregate()
		if agg.TotalCampaigns != 0 || agg.ActiveCampaigns != 0 || agg.TotalBudget != 0 || agg.AvgSuccessRate != 0 {
			t.Errorf("aggregate on empty store = %+v, want zeros", agg)
		}
	})

	t.Run("mixed campaigns", func(t *testing.T) {
		svc := newTestCampaignService(storage.NewMemoryStore())

		a, _ := svc.Create(ctx, validInput("a"))
		b, _ := svc.Create(ctx, validInput("b"))

		active := models.CampaignStatusActive
		if _, err := svc.Update(ctx, a.ID, models.CampaignPatch{Status: &active}); err != nil {
			t.Fatalf("update: %v", err)
		}
		badBudget := "not a number"
		if _, err := svc.Update(ctx, b.ID, models.CampaignPatch{Budget: &badBudget}); err != nil {
			t.Fatalf("update: %v", err)
		}

		agg := svc.Aggregate()
		if agg.TotalCampaigns != 2 {
			t.Errorf("TotalCampaigns = %d, want 2", agg.TotalCampaigns)
		}
		if agg.ActiveCampaigns != 1 {
			t.Errorf("ActiveCampaigns = %d, want 1", agg.ActiveCampaigns)
		}
		if agg.TotalBudget != 10000 {
			t.Errorf("TotalBudget = %v, want 10000 (non-numeric counts as 0)", agg.TotalBudget)
		}

		sum := a.AIAnalysis.SuccessProbability + b.AIAnalysis.SuccessProbability
		want := int(float64(sum)/2 + 0.5)
		if agg.AvgSuccessRate != want {
			t.Errorf("AvgSuccessRate = %d, want %d", agg.AvgSuccessRate, want)
		}
	})
}

func TestHydrateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	svc := newTestCampaignService(store)
	created, _ := svc.Create(ctx, validInput("Launch"))

	// A fresh service over the same store must reproduce the record.
	reloaded := newTestCampaignService(store)
	reloaded.Hydrate(ctx)

	got, ok := reloaded.FindByID(created.ID)
	if !ok {
		t.Fatal("campaign lost across reload")
	}
	if got.Name != created.Name || got.Budget != created.Budget || got.Status != created.Status {
		t.Errorf("fields differ after reload: %+v vs %+v", got, created)
	}
	if got.AIAnalysis == nil || *got.AIAnalysis != *created.AIAnalysis {
		t.Error("analysis differs after reload")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt differs after reload: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestHydrateAbsentStartsEmpty(t *testing.T) {
	svc := newTestCampaignService(storage.NewMemoryStore())
	svc.Hydrate(context.Background())
	if len(svc.List()) != 0 {
		t.Error("hydrate from empty store produced campaigns")
	}
}

// failingStore always errors, standing in for unavailable durable storage.
type failingStore struct{}

func (failingStore) Save(context.Context, string, any) error { return errors.New("disk on fire") }
func (failingStore) Load(context.Context, string, any) (bool, error) {
	return false, errors.New("disk on fire")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("disk on fire") }
func (failingStore) Close() error                         { return nil }

func TestPersistenceFailureDegradesInMemory(t *testing.T) {
	ctx := context.Background()
	svc := newTestCampaignService(failingStore{})
	svc.Hydrate(ctx)

	created, err := svc.Create(ctx, validInput("Launch"))
	if err != nil {
		t.Fatalf("create failed outright on persistence error: %v", err)
	}
	if _, ok := svc.FindByID(created.ID); !ok {
		t.Error("record not kept in memory after persistence failure")
	}

	if !svc.Delete(ctx, created.ID) {
		t.Error("delete failed after persistence failure")
	}
}
