package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"real-estate-intelligence/internal/cleanup"
	"real-estate-intelligence/internal/config"
	"real-estate-intelligence/internal/database"
	"real-estate-intelligence/internal/search"
)

// Scheduler runs the daily maintenance job: retention cleanup followed by a
// full search reindex of the surviving analyses.
type Scheduler struct {
	cron      *cron.Cron
	store     database.Store
	cleanup   *cleanup.Service
	search    *search.SearchClient
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler. The search client may be nil when
// search is disabled.
func NewScheduler(store database.Store, searchClient *search.SearchClient, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		store:   store,
		cleanup: cleanup.NewService(store),
		search:  searchClient,
		config:  cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Analysis.DailyJobEnabled {
		log.Println("Scheduler: Daily job is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Analysis.DailyJobTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: Starting daily maintenance job...")
		if err := s.runMaintenance(); err != nil {
			log.Printf("Scheduler: Daily maintenance failed: %v", err)
		} else {
			log.Println("Scheduler: Daily maintenance completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with daily run at %s (cron: %s)", s.config.Analysis.DailyJobTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

// runMaintenance executes the retention cleanup and reindexes search
func (s *Scheduler) runMaintenance() error {
	cleanupConfig := cleanup.DefaultCleanupConfig()
	cleanupConfig.RetentionDays = s.config.Analysis.RetentionDays

	result, err := s.cleanup.Run(cleanupConfig)
	if err != nil {
		return err
	}

	log.Printf("Scheduler: Cleanup removed %d of %d expired analyses", result.DeletedCount, result.TargetCount)

	if s.search == nil {
		return nil
	}

	if len(result.DeletedAnalyses) > 0 {
		if err := s.search.DeleteAnalyses(result.DeletedAnalyses); err != nil {
			log.Printf("Scheduler: Failed to remove deleted analyses from search: %v", err)
		}
	}

	rows, err := s.store.GetAllAnalyses()
	if err != nil {
		return err
	}

	if err := s.search.IndexAnalyses(rows); err != nil {
		return err
	}

	log.Printf("Scheduler: Reindexed %d analyses", len(rows))
	return nil
}

// RunNow immediately executes the maintenance job (for manual trigger)
func (s *Scheduler) RunNow() error {
	log.Println("Scheduler: Manual trigger - starting maintenance job...")
	return s.runMaintenance()
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 && hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Printf("Scheduler: Failed to parse time '%s', using default 02:00", timeStr)
	return "0 2 * * *"
}
