package models

// Audience quality grades
const (
	AudienceQualityExcellent = "Excellent"
	AudienceQualityGood      = "Good"
	AudienceQualityFair      = "Fair"
)

// Risk levels
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// Analysis is the derived scoring object attached to a campaign exactly
// once, at creation. Edits never regenerate it.
type Analysis struct {
	SuccessProbability  int    `json:"successProbability"`
	PredictedROI        string `json:"predictedROI"`
	AudienceQuality     string `json:"audienceQuality"`
	RiskLevel           string `json:"riskLevel"`
	AudienceMatch       int    `json:"audienceMatch"`
	BudgetEfficiency    int    `json:"budgetEfficiency"`
	ChannelOptimization int    `json:"channelOptimization"`
	TimingScore         int    `json:"timingScore"`
	EstimatedReach      string `json:"estimatedReach"`
}
