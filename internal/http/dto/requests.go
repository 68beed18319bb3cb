package dto

import "github.com/adpilot/dashboard/internal/models"

type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CreateCampaignRequest mirrors the campaign form. Nested JSON posts decode
// straight into it; flat form posts go through forms.Unflatten first.
type CreateCampaignRequest struct {
	Name           string                `json:"name"`
	Budget         string                `json:"budget"`
	StartDate      string                `json:"startDate"`
	EndDate        string                `json:"endDate"`
	Objective      string                `json:"objective"`
	TargetAudience models.TargetAudience `json:"targetAudience"`
	Channels       models.Channels       `json:"channels"`
	Goals          models.Goals          `json:"goals"`
}

func (r CreateCampaignRequest) Input() models.CampaignInput {
	return models.CampaignInput{
		Name:           r.Name,
		Budget:         r.Budget,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Objective:      r.Objective,
		TargetAudience: r.TargetAudience,
		Channels:       r.Channels,
		Goals:          r.Goals,
	}
}

type SelectViewRequest struct {
	View string `json:"view"`
}

type DeleteCampaignRequest struct {
	Confirmed bool `json:"confirmed"`
}

type RegisterVariantRequest struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}
