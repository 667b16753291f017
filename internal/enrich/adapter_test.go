package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-intelligence/internal/models"
)

type stubAdvisor struct {
	text  string
	err   error
	calls int
}

func (s *stubAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func enrichableRecord() models.AnalysisRecord {
	r := models.AnalysisRecord{ID: "a1"}
	r.BasicInfo.Address = "123 Oak Street"
	r.BasicInfo.LocationType = "urban"
	r.Valuation.EstimatedValue = 495000
	return r
}

func TestEnrichAttachesInsights(t *testing.T) {
	advisor := &stubAdvisor{text: "solid fundamentals"}
	ad := NewAdapter(advisor, time.Second, nil)

	out := ad.Enrich(context.Background(), enrichableRecord())

	require.NotNil(t, out.Enrichment)
	assert.Equal(t, "solid fundamentals", out.Enrichment.ValuationInsight)
	assert.Equal(t, "solid fundamentals", out.Enrichment.InvestmentInsight)
	assert.Equal(t, "solid fundamentals", out.Enrichment.MarketInsight)
	assert.Equal(t, 3, advisor.calls)
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	advisor := &stubAdvisor{text: "ok"}
	ad := NewAdapter(advisor, time.Second, nil)

	in := enrichableRecord()
	out := ad.Enrich(context.Background(), in)

	assert.Nil(t, in.Enrichment)
	assert.NotNil(t, out.Enrichment)
	assert.Equal(t, in.Valuation, out.Valuation)
}

func TestEnrichAbsorbsFailures(t *testing.T) {
	advisor := &stubAdvisor{err: errors.New("api down")}
	ad := NewAdapter(advisor, time.Second, nil)

	out := ad.Enrich(context.Background(), enrichableRecord())

	assert.Nil(t, out.Enrichment)
	assert.Equal(t, "123 Oak Street", out.BasicInfo.Address)
}

func TestNilAdvisorIsNoop(t *testing.T) {
	ad := NewAdapter(nil, time.Second, nil)
	assert.False(t, ad.Enabled())

	in := enrichableRecord()
	out := ad.Enrich(context.Background(), in)
	assert.Equal(t, in, out)
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	advisor := &stubAdvisor{err: errors.New("api down")}
	breaker := NewCircuitBreaker(3, time.Hour)
	ad := NewAdapter(advisor, time.Second, breaker)

	ad.Enrich(context.Background(), enrichableRecord())

	open, failures, total := breaker.Status()
	assert.True(t, open)
	assert.Equal(t, 3, failures)
	assert.Equal(t, 3, total)

	// Further enrichment is skipped without touching the advisor.
	before := advisor.calls
	out := ad.Enrich(context.Background(), enrichableRecord())
	assert.Nil(t, out.Enrichment)
	assert.Equal(t, before, advisor.calls)
}

func TestBreakerHalfOpensAfterReset(t *testing.T) {
	breaker := NewCircuitBreaker(1, 10*time.Millisecond)
	breaker.RecordFailure()
	assert.False(t, breaker.CanProceed())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, breaker.CanProceed())

	_, failures, _ := breaker.Status()
	assert.Equal(t, 0, failures)
}

func TestBreakerSuccessResetsFailureStreak(t *testing.T) {
	breaker := NewCircuitBreaker(3, time.Hour)
	breaker.RecordFailure()
	breaker.RecordFailure()
	breaker.RecordSuccess()
	breaker.RecordFailure()

	open, failures, total := breaker.Status()
	assert.False(t, open)
	assert.Equal(t, 1, failures)
	assert.Equal(t, 4, total)
}
