package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/adpilot/dashboard/internal/format"
	"github.com/adpilot/dashboard/internal/models"
	"github.com/adpilot/dashboard/internal/storage"
	"go.uber.org/zap"
)

func newTestReport(campaigns *CampaignService) *ReportService {
	return NewReportService(campaigns, zap.NewNop())
}

func TestPerformanceReport(t *testing.T) {
	ctx := context.Background()
	campaigns := newTestCampaignService(storage.NewMemoryStore())
	created, err := campaigns.Create(ctx, validInput("Launch"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	report, err := newTestReport(campaigns).Performance(created.ID)
	if err != nil {
		t.Fatalf("performance: %v", err)
	}

	if report.CampaignID != created.ID || report.CampaignName != "Launch" {
		t.Errorf("report header = %s / %s", report.CampaignID, report.CampaignName)
	}
	if len(report.Daily) != 7 {
		t.Fatalf("daily points = %d, want 7", len(report.Daily))
	}
	if report.Daily[0].Date != "2024-01-01" {
		t.Errorf("series starts at %s, want the campaign start date", report.Daily[0].Date)
	}

	peak := format.ParseCount(created.AIAnalysis.EstimatedReach)
	if report.Daily[6].Reach != peak {
		t.Errorf("final-day reach = %d, want %d", report.Daily[6].Reach, peak)
	}
	if report.KPI.TotalReach != created.AIAnalysis.EstimatedReach {
		t.Errorf("KPI reach = %s, want %s", report.KPI.TotalReach, created.AIAnalysis.EstimatedReach)
	}
	if report.KPI.PredictedROI != created.AIAnalysis.PredictedROI {
		t.Errorf("KPI roi = %s, want %s", report.KPI.PredictedROI, created.AIAnalysis.PredictedROI)
	}

	// validInput enables the social channel only.
	if len(report.ChannelSplit) != 1 || report.ChannelSplit[0].Name != "Social Media" || report.ChannelSplit[0].Value != 100 {
		t.Errorf("channel split = %+v", report.ChannelSplit)
	}
	if len(report.Audience) == 0 {
		t.Error("no audience rows")
	}
}

func TestPerformanceReportNotFound(t *testing.T) {
	campaigns := newTestCampaignService(storage.NewMemoryStore())
	if _, err := newTestReport(campaigns).Performance("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestChannelSplitSumsTo100(t *testing.T) {
	tests := []struct {
		name     string
		channels models.Channels
		shares   int
	}{
		{"none falls back to default", models.Channels{}, 4},
		{"two enabled", models.Channels{Social: true, Email: true}, 2},
		{"three enabled", models.Channels{Social: true, Search: true, Display: true}, 3},
		{"all enabled", models.Channels{Social: true, Email: true, Search: true, Display: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := channelSplit(tt.channels)
			if len(split) != tt.shares {
				t.Fatalf("shares = %d, want %d", len(split), tt.shares)
			}
			sum := 0
			for _, s := range split {
				sum += s.Value
			}
			if sum != 100 {
				t.Errorf("shares sum to %d", sum)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	campaigns := newTestCampaignService(storage.NewMemoryStore())
	created, err := campaigns.Create(ctx, validInput("Launch"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := newTestReport(campaigns).ExportCSV(created.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	if len(lines) != 8 {
		t.Fatalf("csv lines = %d, want header plus 7 days", len(lines))
	}
	if string(lines[0]) != "date,reach,engagement,conversions,revenue" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	campaigns := newTestCampaignService(storage.NewMemoryStore())
	report := newTestReport(campaigns)

	stats := report.DashboardStats()
	if len(stats) != 4 {
		t.Fatalf("cards = %d, want 4", len(stats))
	}
	if stats[0].Value != "0" || stats[2].Value != "$0" {
		t.Errorf("empty dashboard = %+v", stats)
	}

	created, err := campaigns.Create(ctx, validInput("Launch"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	active := models.CampaignStatusActive
	if _, err := campaigns.Update(ctx, created.ID, models.CampaignPatch{Status: &active}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stats = report.DashboardStats()
	if stats[0].Value != "1" {
		t.Errorf("total = %s, want 1", stats[0].Value)
	}
	if stats[1].Value != "1" || stats[1].Trend != "up" {
		t.Errorf("active card = %+v", stats[1])
	}
	if stats[2].Value != "$10,000" {
		t.Errorf("budget = %s", stats[2].Value)
	}
}
