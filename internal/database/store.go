package database

import (
	"errors"
	"time"

	"real-estate-intelligence/internal/models"
)

// ErrNotFound is returned by single-row lookups that match nothing. Both
// backends map their driver's not-found error to this one so callers never
// depend on gorm or database/sql directly.
var ErrNotFound = errors.New("analysis not found")

// Store is the persistence surface shared by the MySQL and PostgreSQL
// backends. Handlers, cleanup, history, and the search reindexer all depend
// on this interface rather than a concrete driver.
type Store interface {
	// Analyses
	SaveAnalysis(row *models.AnalysisRow) error
	GetAnalysisByID(id string) (*models.AnalysisRow, error)
	GetRecentAnalyses(limit int) ([]models.AnalysisRow, error)
	GetAnalysesForAddress(address string, limit int) ([]models.AnalysisRow, error)
	GetLatestForAddress(address string) (*models.AnalysisRow, error)
	GetAnalysesOlderThan(cutoff time.Time) ([]models.AnalysisRow, error)
	GetAllAnalyses() ([]models.AnalysisRow, error)
	DeleteAnalyses(ids []string) error
	CountAnalyses() (int64, error)

	// Valuation history
	SaveValuationChange(change *models.ValuationChange) error
	GetValuationChanges(address string, limit int) ([]models.ValuationChange, error)

	// Retention audit
	LogDeletions(entries []models.DeleteLog) error
	GetRecentDeleteLogs(limit int) ([]models.DeleteLog, error)
	CountDeleteLogs() (int64, error)

	Close() error
}
