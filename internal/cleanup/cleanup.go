package cleanup

import (
	"fmt"
	"log"
	"time"

	"real-estate-intelligence/internal/database"
	"real-estate-intelligence/internal/models"
)

// Service handles physical deletion of stored analyses past their retention
// window. Deletions are audited in the delete log.
type Service struct {
	store database.Store
}

// NewService creates a new cleanup service
func NewService(store database.Store) *Service {
	return &Service{store: store}
}

// CleanupConfig holds configuration for cleanup operations
type CleanupConfig struct {
	RetentionDays    int  // Days to keep analyses before physical deletion (default: 90)
	MaxDeletionCount int  // Maximum number of analyses to delete in one run (safety limit)
	DryRun           bool // If true, only log what would be deleted without actually deleting
}

// DefaultCleanupConfig returns default configuration
func DefaultCleanupConfig() CleanupConfig {
	return CleanupConfig{
		RetentionDays:    90,
		MaxDeletionCount: 10000,
		DryRun:           false,
	}
}

// CleanupResult holds the result of a cleanup operation
type CleanupResult struct {
	TargetCount     int       `json:"target_count"`
	DeletedCount    int       `json:"deleted_count"`
	ErrorCount      int       `json:"error_count"`
	DryRun          bool      `json:"dry_run"`
	ExecutedAt      time.Time `json:"executed_at"`
	DeletedAnalyses []string  `json:"deleted_analyses"`
	Errors          []string  `json:"errors,omitempty"`
}

// FindExpiredAnalyses finds analyses whose analyzed_at is older than the
// retention window.
func (s *Service) FindExpiredAnalyses(retentionDays int) ([]models.AnalysisRow, error) {
	cutoffDate := time.Now().AddDate(0, 0, -retentionDays)

	rows, err := s.store.GetAnalysesOlderThan(cutoffDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired analyses: %w", err)
	}

	log.Printf("Cleanup: found %d analyses older than %s", len(rows), cutoffDate.Format("2006-01-02"))
	return rows, nil
}

// Run performs the retention cleanup
func (s *Service) Run(config CleanupConfig) (*CleanupResult, error) {
	result := &CleanupResult{
		DryRun:     config.DryRun,
		ExecutedAt: time.Now(),
	}

	expired, err := s.FindExpiredAnalyses(config.RetentionDays)
	if err != nil {
		return nil, err
	}

	result.TargetCount = len(expired)
	if result.TargetCount == 0 {
		log.Println("Cleanup: no expired analyses found")
		return result, nil
	}

	// Safety check: abort if too many analyses would be deleted
	if result.TargetCount > config.MaxDeletionCount {
		return nil, fmt.Errorf("safety check failed: %d analyses exceed max deletion limit of %d",
			result.TargetCount, config.MaxDeletionCount)
	}

	log.Printf("Cleanup: %d analyses to delete (retention: %d days, dry-run: %v)",
		result.TargetCount, config.RetentionDays, config.DryRun)

	if config.DryRun {
		for _, row := range expired {
			log.Printf("[DRY-RUN] Would delete analysis %s (%s, analyzed %s)",
				row.ID, row.PropertyAddress, row.AnalyzedAt.Format("2006-01-02"))
			result.DeletedAnalyses = append(result.DeletedAnalyses, row.ID)
			result.DeletedCount++
		}
		return result, nil
	}

	entries := make([]models.DeleteLog, 0, len(expired))
	ids := make([]string, 0, len(expired))
	for _, row := range expired {
		entries = append(entries, models.DeleteLog{
			AnalysisID:      row.ID,
			PropertyAddress: row.PropertyAddress,
			AnalyzedAt:      row.AnalyzedAt,
			Reason:          models.DeleteReasonExpired,
		})
		ids = append(ids, row.ID)
	}

	// Audit first so a crash between the two steps never loses the trail.
	if err := s.store.LogDeletions(entries); err != nil {
		errMsg := fmt.Sprintf("failed to write delete logs: %v", err)
		log.Printf("Cleanup ERROR: %s", errMsg)
		result.Errors = append(result.Errors, errMsg)
		result.ErrorCount++
		return result, nil
	}

	if err := s.store.DeleteAnalyses(ids); err != nil {
		errMsg := fmt.Sprintf("failed to delete analyses: %v", err)
		log.Printf("Cleanup ERROR: %s", errMsg)
		result.Errors = append(result.Errors, errMsg)
		result.ErrorCount++
		return result, nil
	}

	result.DeletedAnalyses = ids
	result.DeletedCount = len(ids)

	log.Printf("Cleanup completed: %d/%d deleted, %d errors",
		result.DeletedCount, result.TargetCount, result.ErrorCount)

	return result, nil
}

// RecentDeleteLogs returns recent delete log entries
func (s *Service) RecentDeleteLogs(limit int) ([]models.DeleteLog, error) {
	return s.store.GetRecentDeleteLogs(limit)
}

// Stats returns retention statistics for the admin endpoint
func (s *Service) Stats(retentionDays int) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	total, err := s.store.CountAnalyses()
	if err != nil {
		return nil, err
	}
	stats["total_analyses"] = total

	totalDeleted, err := s.store.CountDeleteLogs()
	if err != nil {
		return nil, err
	}
	stats["total_deleted"] = totalDeleted

	expired, err := s.FindExpiredAnalyses(retentionDays)
	if err != nil {
		return nil, err
	}
	stats["expired_ready_for_deletion"] = len(expired)
	stats["retention_days"] = retentionDays

	return stats, nil
}
