package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/adpilot/dashboard/internal/format"
	"github.com/adpilot/dashboard/internal/models"
	"go.uber.org/zap"
)

type PerformancePoint struct {
	Date        string  `json:"date"`
	Reach       int     `json:"reach"`
	Engagement  int     `json:"engagement"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

type ChannelShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type AudienceRow struct {
	Age        string  `json:"age"`
	Percentage int     `json:"percentage"`
	Engagement float64 `json:"engagement"`
}

type ReportKPI struct {
	TotalReach     string `json:"totalReach"`
	EngagementRate string `json:"engagementRate"`
	Conversions    int    `json:"conversions"`
	PredictedROI   string `json:"predictedROI"`
}

type PerformanceReport struct {
	CampaignID   string             `json:"campaignId"`
	CampaignName string             `json:"campaignName"`
	GeneratedAt  time.Time          `json:"generatedAt"`
	KPI          ReportKPI          `json:"kpi"`
	Daily        []PerformancePoint `json:"daily"`
	ChannelSplit []ChannelShare     `json:"channelSplit"`
	Audience     []AudienceRow      `json:"audience"`
}

// DashboardStat is one headline card, decorated with the change/trend
// strings the dashboard shows next to each number.
type DashboardStat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// dailyShape is the relative intensity of the seven report days; absolute
// numbers are scaled from the campaign's estimated reach.
var dailyShape = []struct {
	reach, engagement, conversions float64
}{
	{0.43, 0.38, 0.40},
	{0.51, 0.45, 0.46},
	{0.63, 0.57, 0.61},
	{0.71, 0.69, 0.70},
	{0.80, 0.76, 0.79},
	{0.91, 0.88, 0.88},
	{1.00, 1.00, 1.00},
}

var defaultChannelSplit = []ChannelShare{
	{Name: "Social Media", Value: 45},
	{Name: "Email", Value: 25},
	{Name: "Search Ads", Value: 20},
	{Name: "Display", Value: 10},
}

var channelLabels = map[string]string{
	"social":  "Social Media",
	"email":   "Email",
	"search":  "Search Ads",
	"display": "Display",
}

var audienceBreakdown = []AudienceRow{
	{Age: "18-24", Percentage: 15, Engagement: 7.2},
	{Age: "25-34", Percentage: 35, Engagement: 8.5},
	{Age: "35-44", Percentage: 28, Engagement: 6.8},
	{Age: "45-54", Percentage: 15, Engagement: 5.9},
	{Age: "55+", Percentage: 7, Engagement: 4.2},
}

// ReportService renders read-only snapshots of campaign and aggregate data
// for the reports and dashboard views. It never mutates the store.
type ReportService struct {
	campaigns *CampaignService
	log       *zap.Logger
}

func NewReportService(campaigns *CampaignService, log *zap.Logger) *ReportService {
	return &ReportService{campaigns: campaigns, log: log}
}

// Performance builds the seven-day report for one campaign. The series is
// derived from the campaign's analysis, not measured: there is no data
// pipeline behind this dashboard.
func (s *ReportService) Performance(id string) (*PerformanceReport, error) {
	c, ok := s.campaigns.FindByID(id)
	if !ok {
		return nil, ErrNotFound
	}

	peakReach := 35000
	roi := "n/a"
	if c.AIAnalysis != nil {
		if r := format.ParseCount(c.AIAnalysis.EstimatedReach); r > 0 {
			peakReach = r
		}
		roi = c.AIAnalysis.PredictedROI
	}

	start := reportStart(c)
	daily := make([]PerformancePoint, 0, len(dailyShape))
	totalConversions := 0
	for i, d := range dailyShape {
		reach := int(float64(peakReach) * d.reach)
		engagement := int(float64(peakReach) * 0.06 * d.engagement)
		conversions := int(float64(peakReach) * 0.0032 * d.conversions)
		totalConversions += conversions
		daily = append(daily, PerformancePoint{
			Date:        start.AddDate(0, 0, i).Format("2006-01-02"),
			Reach:       reach,
			Engagement:  engagement,
			Conversions: conversions,
			Revenue:     float64(conversions) * 50,
		})
	}

	return &PerformanceReport{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		GeneratedAt:  time.Now(),
		KPI: ReportKPI{
			TotalReach:     format.FormatCount(peakReach),
			EngagementRate: "6%",
			Conversions:    totalConversions,
			PredictedROI:   roi,
		},
		Daily:        daily,
		ChannelSplit: channelSplit(c.Channels),
		Audience:     audienceBreakdown,
	}, nil
}

// ExportCSV renders the daily series as CSV for download.
func (s *ReportService) ExportCSV(id string) ([]byte, error) {
	report, err := s.Performance(id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "reach", "engagement", "conversions", "revenue"})
	for _, p := range report.Daily {
		_ = w.Write([]string{
			p.Date,
			strconv.Itoa(p.Reach),
			strconv.Itoa(p.Engagement),
			strconv.Itoa(p.Conversions),
			strconv.FormatFloat(p.Revenue, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DashboardStats decorates the aggregate with the change/trend strings the
// dashboard cards show.
func (s *ReportService) DashboardStats() []DashboardStat {
	agg := s.campaigns.Aggregate()

	totalChange := "0"
	if agg.TotalCampaigns > 0 {
		totalChange = "+" + strconv.Itoa(agg.TotalCampaigns/2)
	}

	activeChange, activeTrend := "0%", "neutral"
	if agg.ActiveCampaigns*2 > agg.TotalCampaigns {
		activeChange, activeTrend = "+15%", "up"
	}

	budgetChange, budgetTrend := "0%", "neutral"
	if agg.TotalBudget > 0 {
		budgetChange, budgetTrend = "+12%", "up"
	}

	successChange, successTrend := "0%", "neutral"
	switch {
	case agg.AvgSuccessRate > 70:
		successChange, successTrend = "+5%", "up"
	case agg.AvgSuccessRate > 50:
		// neutral
	default:
		successChange, successTrend = "-2%", "down"
	}

	return []DashboardStat{
		{Title: "Total Campaigns", Value: strconv.Itoa(agg.TotalCampaigns), Change: totalChange, Trend: "up"},
		{Title: "Active Campaigns", Value: strconv.Itoa(agg.ActiveCampaigns), Change: activeChange, Trend: activeTrend},
		{Title: "Total Budget", Value: format.FormatCurrency(agg.TotalBudget), Change: budgetChange, Trend: budgetTrend},
		{Title: "Avg Success Rate", Value: format.FormatPercent(agg.AvgSuccessRate), Change: successChange, Trend: successTrend},
	}
}

// channelSplit weights the pie across the campaign's enabled channels; a
// campaign with none enabled falls back to the default split.
func channelSplit(ch models.Channels) []ChannelShare {
	enabled := ch.Enabled()
	if len(enabled) == 0 {
		return defaultChannelSplit
	}

	share := 100 / len(enabled)
	out := make([]ChannelShare, 0, len(enabled))
	for i, name := range enabled {
		v := share
		if i == 0 {
			v = 100 - share*(len(enabled)-1)
		}
		out = append(out, ChannelShare{Name: channelLabels[name], Value: v})
	}
	return out
}

func reportStart(c *models.Campaign) time.Time {
	if t, err := time.Parse("2006-01-02", c.StartDate); err == nil {
		return t
	}
	return c.CreatedAt
}
