package models

import "time"

// AnalysisRow is the persisted summary of a completed analysis. The full
// AnalysisRecord is stored as JSON in Payload; the indexed columns exist for
// history queries and search reindexing. Persistence is best-effort: a
// failed save never fails the analysis request.
type AnalysisRow struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyAddress string    `gorm:"type:varchar(500);not null;index" json:"property_address"`
	EstimatedValue  float64   `gorm:"type:decimal(14,2);not null" json:"estimated_value"`
	PricePerSqft    float64   `gorm:"type:decimal(10,2)" json:"price_per_sqft"`
	InvestmentScore int       `gorm:"type:int;index" json:"investment_score"`
	ROIPercentage   float64   `gorm:"type:decimal(6,2)" json:"roi_percentage"`
	Recommendation  string    `gorm:"type:text" json:"recommendation"`
	OverallRisk     string    `gorm:"type:varchar(20);index" json:"overall_risk"`
	Enriched        bool      `gorm:"type:boolean;default:false" json:"enriched"`
	Payload         string    `gorm:"type:longtext" json:"-"`
	AnalyzedAt      time.Time `gorm:"type:datetime;not null;index" json:"analyzed_at"`
	CreatedAt       time.Time `gorm:"type:datetime;not null;autoCreateTime" json:"created_at"`
}

func (AnalysisRow) TableName() string {
	return "analyses"
}

// ValuationChange records a significant value movement between two analyses
// of the same address.
type ValuationChange struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyAddress string    `gorm:"type:varchar(500);not null;index" json:"property_address"`
	AnalysisID      string    `gorm:"type:varchar(36);not null" json:"analysis_id"`
	OldValue        float64   `gorm:"type:decimal(14,2)" json:"old_value"`
	NewValue        float64   `gorm:"type:decimal(14,2)" json:"new_value"`
	ChangePercent   float64   `gorm:"type:decimal(6,2)" json:"change_percent"`
	DetectedAt      time.Time `gorm:"type:datetime;not null;autoCreateTime;index" json:"detected_at"`
}

func (ValuationChange) TableName() string {
	return "valuation_changes"
}

// DeleteLog records analyses physically removed by retention cleanup.
type DeleteLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AnalysisID      string    `gorm:"type:varchar(36);not null;index" json:"analysis_id"`
	PropertyAddress string    `gorm:"type:text" json:"property_address"`
	AnalyzedAt      time.Time `gorm:"type:datetime" json:"analyzed_at"`
	DeletedAt       time.Time `gorm:"type:datetime;not null;autoCreateTime;index" json:"deleted_at"`
	Reason          string    `gorm:"type:varchar(50);not null" json:"reason"`
}

func (DeleteLog) TableName() string {
	return "delete_logs"
}

// DeleteReason constants
const (
	DeleteReasonExpired = "retention_expired"
	DeleteReasonManual  = "manual_deletion"
)
