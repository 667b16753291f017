package enrich

import (
	"context"
	"log"
	"time"

	"real-estate-intelligence/internal/models"
)

// Adapter is the only place the external language-model dependency is
// touched. Enrichment is strictly best-effort: every failure is logged and
// absorbed, and the deterministic result is returned in full either way.
type Adapter struct {
	advisor Advisor
	timeout time.Duration
	breaker *CircuitBreaker
}

// NewAdapter wraps an advisor with a per-call timeout and a circuit breaker.
// A nil advisor yields an adapter whose Enrich is a no-op.
func NewAdapter(advisor Advisor, timeout time.Duration, breaker *CircuitBreaker) *Adapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Adapter{
		advisor: advisor,
		timeout: timeout,
		breaker: breaker,
	}
}

// Enabled reports whether an advisor is configured.
func (ad *Adapter) Enabled() bool {
	return ad != nil && ad.advisor != nil
}

// Enrich appends advisory commentary to a copy of the record. Each of the
// three aspects is called independently with its own timeout so one stuck
// call cannot block the others.
func (ad *Adapter) Enrich(ctx context.Context, record models.AnalysisRecord) models.AnalysisRecord {
	if !ad.Enabled() {
		return record
	}

	if ad.breaker != nil && !ad.breaker.CanProceed() {
		log.Printf("Enrichment: skipped for %s (circuit breaker open)", record.BasicInfo.Address)
		return record
	}

	insights := models.EnrichmentInsights{
		ValuationInsight:  ad.advise(ctx, "valuation", valuationPrompt(record.BasicInfo, record)),
		InvestmentInsight: ad.advise(ctx, "investment", investmentPrompt(record.BasicInfo, record)),
		MarketInsight:     ad.advise(ctx, "market", marketPrompt(record.BasicInfo, record)),
	}

	if insights == (models.EnrichmentInsights{}) {
		return record
	}

	record.Enrichment = &insights
	return record
}

// advise runs one advisory call; failures return an empty string.
func (ad *Adapter) advise(ctx context.Context, aspect, prompt string) string {
	callCtx, cancel := context.WithTimeout(ctx, ad.timeout)
	defer cancel()

	text, err := ad.advisor.Advise(callCtx, prompt)
	if err != nil {
		log.Printf("Enrichment: %s advisor failed: %v", aspect, err)
		if ad.breaker != nil {
			ad.breaker.RecordFailure()
		}
		return ""
	}

	if ad.breaker != nil {
		ad.breaker.RecordSuccess()
	}
	return text
}
