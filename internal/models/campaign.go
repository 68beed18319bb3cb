package models

import (
	"time"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign objectives
const (
	ObjectiveAwareness  = "awareness"
	ObjectiveTraffic    = "traffic"
	ObjectiveEngagement = "engagement"
	ObjectiveLeads      = "leads"
	ObjectiveSales      = "sales"
	ObjectiveRetention  = "retention"
)

var campaignStatuses = map[string]struct{}{
	CampaignStatusDraft:     {},
	CampaignStatusActive:    {},
	CampaignStatusPaused:    {},
	CampaignStatusCompleted: {},
}

var campaignObjectives = map[string]struct{}{
	ObjectiveAwareness:  {},
	ObjectiveTraffic:    {},
	ObjectiveEngagement: {},
	ObjectiveLeads:      {},
	ObjectiveSales:      {},
	ObjectiveRetention:  {},
}

func IsValidStatus(s string) bool {
	_, ok := campaignStatuses[s]
	return ok
}

func IsValidObjective(s string) bool {
	_, ok := campaignObjectives[s]
	return ok
}

type TargetAudience struct {
	AgeRange  string `json:"ageRange"`
	Gender    string `json:"gender"`
	Interests string `json:"interests"`
	Location  string `json:"location"`
}

type Channels struct {
	Social  bool `json:"social"`
	Email   bool `json:"email"`
	Search  bool `json:"search"`
	Display bool `json:"display"`
}

// Enabled returns the names of the active channels, in a stable order.
func (c Channels) Enabled() []string {
	var out []string
	if c.Social {
		out = append(out, "social")
	}
	if c.Email {
		out = append(out, "email")
	}
	if c.Search {
		out = append(out, "search")
	}
	if c.Display {
		out = append(out, "display")
	}
	return out
}

type Goals struct {
	Reach       string `json:"reach"`
	Engagement  string `json:"engagement"`
	Conversions string `json:"conversions"`
	ROI         string `json:"roi"`
}

// Campaign is the unit record of the dashboard. Budget and goal targets are
// kept as strings end to end: they arrive as raw form input and the store
// only interprets them numerically when aggregating.
type Campaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Budget         string         `json:"budget"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	Objective      string         `json:"objective"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Channels       Channels       `json:"channels"`
	Goals          Goals          `json:"goals"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	AIAnalysis     *Analysis      `json:"aiAnalysis,omitempty"`
}

// CampaignInput carries the creation fields. Everything except the four
// required fields may be left zero.
type CampaignInput struct {
	Name           string         `json:"name"`
	Budget         string         `json:"budget"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	Objective      string         `json:"objective"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Channels       Channels       `json:"channels"`
	Goals          Goals          `json:"goals"`
}

type TargetAudiencePatch struct {
	AgeRange  *string `json:"ageRange,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Interests *string `json:"interests,omitempty"`
	Location  *string `json:"location,omitempty"`
}

type ChannelsPatch struct {
	Social  *bool `json:"social,omitempty"`
	Email   *bool `json:"email,omitempty"`
	Search  *bool `json:"search,omitempty"`
	Display *bool `json:"display,omitempty"`
}

type GoalsPatch struct {
	Reach       *string `json:"reach,omitempty"`
	Engagement  *string `json:"engagement,omitempty"`
	Conversions *string `json:"conversions,omitempty"`
	ROI         *string `json:"roi,omitempty"`
}

// CampaignPatch is a partial update. Nil fields are left untouched; the
// nested patches merge key by key so siblings of an edited sub-field
// survive. AIAnalysis is deliberately absent: edits never touch it.
type CampaignPatch struct {
	Name           *string              `json:"name,omitempty"`
	Budget         *string              `json:"budget,omitempty"`
	StartDate      *string              `json:"startDate,omitempty"`
	EndDate        *string              `json:"endDate,omitempty"`
	Objective      *string              `json:"objective,omitempty"`
	Status         *string              `json:"status,omitempty"`
	TargetAudience *TargetAudiencePatch `json:"targetAudience,omitempty"`
	Channels       *ChannelsPatch       `json:"channels,omitempty"`
	Goals          *GoalsPatch          `json:"goals,omitempty"`
}

// Apply merges the patch into a copy of the campaign and returns it.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.TargetAudience != nil {
		if v := p.TargetAudience.AgeRange; v != nil {
			c.TargetAudience.AgeRange = *v
		}
		if v := p.TargetAudience.Gender; v != nil {
			c.TargetAudience.Gender = *v
		}
		if v := p.TargetAudience.Interests; v != nil {
			c.TargetAudience.Interests = *v
		}
		if v := p.TargetAudience.Location; v != nil {
			c.TargetAudience.Location = *v
		}
	}
	if p.Channels != nil {
		if v := p.Channels.Social; v != nil {
			c.Channels.Social = *v
		}
		if v := p.Channels.Email; v != nil {
			c.Channels.Email = *v
		}
		if v := p.Channels.Search; v != nil {
			c.Channels.Search = *v
		}
		if v := p.Channels.Display; v != nil {
			c.Channels.Display = *v
		}
	}
	if p.Goals != nil {
		if v := p.Goals.Reach; v != nil {
			c.Goals.Reach = *v
		}
		if v := p.Goals.Engagement; v != nil {
			c.Goals.Engagement = *v
		}
		if v := p.Goals.Conversions; v != nil {
			c.Goals.Conversions = *v
		}
		if v := p.Goals.ROI; v != nil {
			c.Goals.ROI = *v
		}
	}
	return c
}
