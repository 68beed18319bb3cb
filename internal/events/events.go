package events

import "context"

// Event types
const (
	EventCampaignCreated = "campaign_created"
	EventCampaignUpdated = "campaign_updated"
	EventCampaignDeleted = "campaign_deleted"
	EventABTestCompleted = "abtest_completed"
	EventSessionStarted  = "session_started"
	EventSessionEnded    = "session_ended"
)

// Streams
const (
	StreamCampaigns = "events:campaigns"
	StreamSession   = "events:session"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
