package workbench

import (
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"real-estate-intelligence/internal/models"
)

// FeedbackLog is the append-only store of reviewer feedback. Records get
// sequential ids and are never mutated after submission; the only removal
// path is a bulk clear. A mutex guards the slice because gin serves requests
// concurrently.
type FeedbackLog struct {
	mu      sync.Mutex
	history []models.FeedbackRecord
}

// NewFeedbackLog creates an empty feedback log.
func NewFeedbackLog() *FeedbackLog {
	return &FeedbackLog{}
}

// Submit appends a feedback record, assigning the next sequential id and
// clamping the confidence adjustment to [-1, 1].
func (fl *FeedbackLog) Submit(address, feedbackType, content, analyst string, confidenceAdjustment float64) models.FeedbackRecord {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if analyst == "" {
		analyst = "Anonymous"
	}

	record := models.FeedbackRecord{
		ID:                   len(fl.history) + 1,
		Timestamp:            time.Now(),
		PropertyAddress:      address,
		FeedbackType:         feedbackType,
		FeedbackContent:      content,
		AnalystName:          analyst,
		ConfidenceAdjustment: clamp(confidenceAdjustment, -1, 1),
		Status:               "submitted",
	}

	fl.history = append(fl.history, record)
	log.Printf("Workbench: feedback submitted for %s by %s", address, analyst)

	return record
}

// ForProperty returns all feedback for an address in submission order.
func (fl *FeedbackLog) ForProperty(address string) []models.FeedbackRecord {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	out := make([]models.FeedbackRecord, 0)
	for _, f := range fl.history {
		if f.PropertyAddress == address {
			out = append(out, f)
		}
	}
	return out
}

// Stats summarizes the whole log.
func (fl *FeedbackLog) Stats() models.FeedbackStats {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	byType := make(map[string]int)
	properties := make(map[string]struct{})
	analysts := make(map[string]struct{})

	for _, f := range fl.history {
		byType[f.FeedbackType]++
		properties[f.PropertyAddress] = struct{}{}
		analysts[f.AnalystName] = struct{}{}
	}

	return models.FeedbackStats{
		TotalFeedback:    len(fl.history),
		FeedbackByType:   byType,
		UniqueProperties: len(properties),
		UniqueAnalysts:   len(analysts),
	}
}

// Clear removes all feedback history.
func (fl *FeedbackLog) Clear() {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	fl.history = nil
	log.Printf("Workbench: feedback history cleared")
}

// ApplyFeedback returns a copy of the analysis with the average confidence
// adjustment applied (result clamped to [0, 1]) and a feedback summary block
// attached. The feedback log itself is not modified.
func ApplyFeedback(a models.AnalysisRecord, feedback []models.FeedbackRecord) models.AnalysisRecord {
	if len(feedback) == 0 {
		return a
	}

	total := 0.0
	for _, f := range feedback {
		total += f.ConfidenceAdjustment
	}
	avg := total / float64(len(feedback))

	a.Valuation.ConfidenceScore = clamp(a.Valuation.ConfidenceScore+avg, 0, 1)

	summary := make([]models.FeedbackSummaryEntry, 0, len(feedback))
	for _, f := range feedback {
		summary = append(summary, models.FeedbackSummaryEntry{
			Type:    f.FeedbackType,
			Analyst: f.AnalystName,
			Content: truncate(f.FeedbackContent, 100),
		})
	}

	a.HumanFeedback = &models.HumanFeedback{
		FeedbackCount:        len(feedback),
		ConfidenceAdjustment: avg,
		LastFeedback:         time.Now(),
		FeedbackSummary:      summary,
	}

	log.Printf("Workbench: applied %d feedback records to analysis %s", len(feedback), a.ID)
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate shortens s to at most maxLen bytes, backing up so the cut never
// splits a multi-byte rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
