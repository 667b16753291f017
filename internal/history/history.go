package history

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"time"

	"real-estate-intelligence/internal/database"
	"real-estate-intelligence/internal/models"
)

// SignificantChangePercent is the movement threshold below which a new
// valuation of the same address is not recorded as a change.
const SignificantChangePercent = 5.0

// Service persists completed analyses and tracks valuation movement per
// address across repeated analyses.
type Service struct {
	store database.Store
}

// NewService creates a history service backed by the given store.
func NewService(store database.Store) *Service {
	return &Service{store: store}
}

// RecordAnalysis saves a completed analysis and, when a previous analysis
// exists for the same address, records a valuation change if the value moved
// by more than the significance threshold.
func (s *Service) RecordAnalysis(record models.AnalysisRecord) error {
	previous, err := s.store.GetLatestForAddress(record.BasicInfo.Address)
	if err != nil {
		// Not-found is the common case for first-time addresses. Anything
		// else means change detection is skipped this round, which is worth
		// a log line.
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("History: could not load previous analysis for %s, skipping change detection: %v",
				record.BasicInfo.Address, err)
		}
		previous = nil
	}

	row, err := ToRow(record)
	if err != nil {
		return err
	}

	if err := s.store.SaveAnalysis(&row); err != nil {
		return err
	}

	if previous != nil {
		s.detectValuationChange(previous, &row)
	}

	return nil
}

func (s *Service) detectValuationChange(previous, current *models.AnalysisRow) {
	if previous.EstimatedValue <= 0 {
		return
	}

	changePercent := (current.EstimatedValue - previous.EstimatedValue) / previous.EstimatedValue * 100
	if math.Abs(changePercent) < SignificantChangePercent {
		return
	}

	change := &models.ValuationChange{
		PropertyAddress: current.PropertyAddress,
		AnalysisID:      current.ID,
		OldValue:        previous.EstimatedValue,
		NewValue:        current.EstimatedValue,
		ChangePercent:   math.Round(changePercent*100) / 100,
		DetectedAt:      time.Now(),
	}

	if err := s.store.SaveValuationChange(change); err != nil {
		log.Printf("History: failed to record valuation change for %s: %v", current.PropertyAddress, err)
		return
	}

	log.Printf("History: valuation of %s moved %.2f%% (%.2f -> %.2f)",
		current.PropertyAddress, changePercent, previous.EstimatedValue, current.EstimatedValue)
}

// ForAddress returns the stored analyses for an address, newest first.
func (s *Service) ForAddress(address string, limit int) ([]models.AnalysisRow, error) {
	return s.store.GetAnalysesForAddress(address, limit)
}

// Recent returns the most recently analyzed rows across all addresses.
func (s *Service) Recent(limit int) ([]models.AnalysisRow, error) {
	return s.store.GetRecentAnalyses(limit)
}

// All returns every stored analysis row, newest first. Used by the search
// reindexer.
func (s *Service) All() ([]models.AnalysisRow, error) {
	return s.store.GetAllAnalyses()
}

// Changes returns the recorded valuation changes for an address.
func (s *Service) Changes(address string, limit int) ([]models.ValuationChange, error) {
	return s.store.GetValuationChanges(address, limit)
}

// Get loads one stored analysis and decodes its full payload.
func (s *Service) Get(id string) (*models.AnalysisRecord, error) {
	row, err := s.store.GetAnalysisByID(id)
	if err != nil {
		return nil, err
	}
	return FromRow(*row)
}

// ToRow flattens an analysis into its persisted form. The full record is
// kept as JSON so it can be returned unchanged later.
func ToRow(record models.AnalysisRecord) (models.AnalysisRow, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return models.AnalysisRow{}, err
	}

	return models.AnalysisRow{
		ID:              record.ID,
		PropertyAddress: record.BasicInfo.Address,
		EstimatedValue:  record.Valuation.EstimatedValue,
		PricePerSqft:    record.Valuation.PricePerSqft,
		InvestmentScore: record.InvestmentAnalysis.InvestmentScore,
		ROIPercentage:   record.InvestmentAnalysis.ROIPercentage,
		Recommendation:  record.InvestmentAnalysis.Recommendation,
		OverallRisk:     record.RiskAssessment.OverallRisk,
		Enriched:        record.Enrichment != nil,
		Payload:         string(payload),
		AnalyzedAt:      record.AnalysisSummary.AnalysisDate,
	}, nil
}

// FromRow decodes the stored payload back into a full analysis record.
func FromRow(row models.AnalysisRow) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	if err := json.Unmarshal([]byte(row.Payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
