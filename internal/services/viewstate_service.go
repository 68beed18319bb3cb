package services

import (
	"context"
	"sync"

	"github.com/adpilot/dashboard/internal/models"
)

// Views
const (
	ViewDashboard = "dashboard"
	ViewCampaigns = "campaigns"
	ViewAnalysis  = "analysis"
	ViewABTesting = "ab-testing"
	ViewReports   = "reports"
)

var views = map[string]struct{}{
	ViewDashboard: {},
	ViewCampaigns: {},
	ViewAnalysis:  {},
	ViewABTesting: {},
	ViewReports:   {},
}

func IsValidView(v string) bool {
	_, ok := views[v]
	return ok
}

// ViewSnapshot is what the rendering layer reads. When the analysis or
// reports view has no selection it carries an explicit empty-state message
// instead of a campaign.
type ViewSnapshot struct {
	CurrentView      string           `json:"currentView"`
	ShowCampaignForm bool             `json:"showCampaignForm"`
	Selected         *models.Campaign `json:"selectedCampaign,omitempty"`
	FormPrefill      *models.Campaign `json:"formPrefill,omitempty"`
	EmptyState       string           `json:"emptyState,omitempty"`
}

// ViewStateService mediates between user actions and the campaign store.
// Its state is transient: reconstructed fresh each session, starting at the
// dashboard. Stale campaign ids (deleted elsewhere) leave the state
// unchanged rather than failing.
type ViewStateService struct {
	campaigns *CampaignService

	mu          sync.RWMutex
	currentView string
	selectedID  string
	showForm    bool
	prefillID   string
}

func NewViewStateService(campaigns *CampaignService) *ViewStateService {
	return &ViewStateService{campaigns: campaigns, currentView: ViewDashboard}
}

// SelectView switches the active view. The selected campaign is kept.
func (s *ViewStateService) SelectView(v string) error {
	if !IsValidView(v) {
		return &ValidationError{Field: "view", Reason: "is not a valid view"}
	}
	s.mu.Lock()
	s.currentView = v
	s.mu.Unlock()
	return nil
}

// OpenCreateForm overlays the campaign form over the current view.
func (s *ViewStateService) OpenCreateForm() {
	s.mu.Lock()
	s.showForm = true
	s.prefillID = ""
	s.mu.Unlock()
}

// CancelForm hides the form and changes nothing else.
func (s *ViewStateService) CancelForm() {
	s.mu.Lock()
	s.showForm = false
	s.prefillID = ""
	s.mu.Unlock()
}

// SubmitForm creates the campaign and, on success, selects it, closes the
// form and lands on the analysis view.
func (s *ViewStateService) SubmitForm(ctx context.Context, input models.CampaignInput) (*models.Campaign, error) {
	created, err := s.campaigns.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.selectedID = created.ID
	s.showForm = false
	s.prefillID = ""
	s.currentView = ViewAnalysis
	s.mu.Unlock()
	return created, nil
}

// ViewCampaign selects the campaign and opens the analysis view. An absent
// id leaves everything as it was.
func (s *ViewStateService) ViewCampaign(id string) bool {
	return s.selectAndGo(id, ViewAnalysis)
}

// ViewReport selects the campaign and opens the reports view.
func (s *ViewStateService) ViewReport(id string) bool {
	return s.selectAndGo(id, ViewReports)
}

func (s *ViewStateService) selectAndGo(id, view string) bool {
	if _, ok := s.campaigns.FindByID(id); !ok {
		return false
	}
	s.mu.Lock()
	s.selectedID = id
	s.currentView = view
	s.mu.Unlock()
	return true
}

// EditCampaign selects the campaign and opens the form prefilled with it.
func (s *ViewStateService) EditCampaign(id string) bool {
	if _, ok := s.campaigns.FindByID(id); !ok {
		return false
	}
	s.mu.Lock()
	s.selectedID = id
	s.prefillID = id
	s.showForm = true
	s.mu.Unlock()
	return true
}

// DeleteCampaign removes the campaign after explicit confirmation. If the
// deleted campaign was selected, the selection is cleared and the view
// moves to the campaign list.
func (s *ViewStateService) DeleteCampaign(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	deleted := s.campaigns.Delete(ctx, id)
	if !deleted {
		return nil
	}

	s.mu.Lock()
	if s.selectedID == id {
		s.selectedID = ""
		s.currentView = ViewCampaigns
	}
	if s.prefillID == id {
		s.prefillID = ""
		s.showForm = false
	}
	s.mu.Unlock()
	return nil
}

// Reset returns the state to its fresh-session shape.
func (s *ViewStateService) Reset() {
	s.mu.Lock()
	s.currentView = ViewDashboard
	s.selectedID = ""
	s.showForm = false
	s.prefillID = ""
	s.mu.Unlock()
}

// Snapshot resolves the current state for rendering. The selected id is
// looked up on every call: a campaign deleted since selection simply
// renders the empty state.
func (s *ViewStateService) Snapshot() ViewSnapshot {
	s.mu.RLock()
	view := s.currentView
	selectedID := s.selectedID
	showForm := s.showForm
	prefillID := s.prefillID
	s.mu.RUnlock()

	snap := ViewSnapshot{CurrentView: view, ShowCampaignForm: showForm}
	if selectedID != "" {
		if c, ok := s.campaigns.FindByID(selectedID); ok {
			snap.Selected = c
		}
	}
	if showForm && prefillID != "" {
		if c, ok := s.campaigns.FindByID(prefillID); ok {
			snap.FormPrefill = c
		}
	}

	if snap.Selected == nil {
		switch view {
		case ViewAnalysis:
			snap.EmptyState = "Select a campaign to view analysis"
		case ViewReports:
			snap.EmptyState = "Select a campaign to view report"
		}
	}
	return snap
}
