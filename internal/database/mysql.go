package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"real-estate-intelligence/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(host string, port int, user, password, dbname string) (*GormStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

// NewGormStoreFromDB wraps an existing gorm.DB instance (used in tests with
// sqlmock or SQLite).
func NewGormStoreFromDB(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (s *GormStore) InitSchema() error {
	return s.db.AutoMigrate(
		&models.AnalysisRow{},
		&models.ValuationChange{},
		&models.DeleteLog{},
	)
}

// SaveAnalysis upserts an analysis row by id. Analyses are immutable once
// written, so a conflict only happens on retried saves.
func (s *GormStore) SaveAnalysis(row *models.AnalysisRow) error {
	if row.AnalyzedAt.IsZero() {
		row.AnalyzedAt = time.Now()
	}

	var existing models.AnalysisRow
	result := s.db.Where("id = ?", row.ID).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return s.db.Create(row).Error
	} else if result.Error != nil {
		return result.Error
	}

	row.CreatedAt = existing.CreatedAt
	return s.db.Save(row).Error
}

func (s *GormStore) GetAnalysisByID(id string) (*models.AnalysisRow, error) {
	var row models.AnalysisRow
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) GetRecentAnalyses(limit int) ([]models.AnalysisRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.AnalysisRow
	err := s.db.Order("analyzed_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (s *GormStore) GetAnalysesForAddress(address string, limit int) ([]models.AnalysisRow, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.AnalysisRow
	err := s.db.Where("property_address = ?", address).
		Order("analyzed_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (s *GormStore) GetLatestForAddress(address string) (*models.AnalysisRow, error) {
	var row models.AnalysisRow
	err := s.db.Where("property_address = ?", address).
		Order("analyzed_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) GetAnalysesOlderThan(cutoff time.Time) ([]models.AnalysisRow, error) {
	var rows []models.AnalysisRow
	err := s.db.Where("analyzed_at < ?", cutoff).
		Order("analyzed_at ASC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) GetAllAnalyses() ([]models.AnalysisRow, error) {
	var rows []models.AnalysisRow
	err := s.db.Order("analyzed_at DESC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) DeleteAnalyses(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Where("id IN ?", ids).Delete(&models.AnalysisRow{}).Error
}

func (s *GormStore) CountAnalyses() (int64, error) {
	var count int64
	err := s.db.Model(&models.AnalysisRow{}).Count(&count).Error
	return count, err
}

func (s *GormStore) SaveValuationChange(change *models.ValuationChange) error {
	return s.db.Create(change).Error
}

func (s *GormStore) GetValuationChanges(address string, limit int) ([]models.ValuationChange, error) {
	if limit <= 0 {
		limit = 20
	}
	var changes []models.ValuationChange
	err := s.db.Where("property_address = ?", address).
		Order("detected_at DESC").Limit(limit).Find(&changes).Error
	return changes, err
}

func (s *GormStore) LogDeletions(entries []models.DeleteLog) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.Create(&entries).Error
}

func (s *GormStore) GetRecentDeleteLogs(limit int) ([]models.DeleteLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.DeleteLog
	err := s.db.Order("deleted_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (s *GormStore) CountDeleteLogs() (int64, error) {
	var count int64
	err := s.db.Model(&models.DeleteLog{}).Count(&count).Error
	return count, err
}
