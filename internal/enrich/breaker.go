package enrich

import (
	"log"
	"sync"
	"time"
)

// CircuitBreaker stops advisory calls after repeated failures so a broken or
// rate-limited external API never slows down the deterministic pipeline.
type CircuitBreaker struct {
	failureThreshold int
	resetTimeout     time.Duration

	consecutiveFailures int
	successes           int
	totalCalls          int
	isOpen              bool
	lastFailureTime     time.Time

	mutex sync.Mutex
}

// NewCircuitBreaker opens after failureThreshold consecutive failures and
// allows a retry once resetTimeout has passed.
func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
	}
}

// RecordSuccess resets the consecutive-failure count.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.successes++
	cb.totalCalls++
	cb.consecutiveFailures = 0
}

// RecordFailure counts a failed advisory call and opens the breaker when the
// threshold is reached.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.consecutiveFailures++
	cb.totalCalls++
	cb.lastFailureTime = time.Now()

	if cb.consecutiveFailures >= cb.failureThreshold && !cb.isOpen {
		cb.isOpen = true
		log.Printf("Enrichment: circuit breaker open after %d consecutive failures, retrying after %v",
			cb.consecutiveFailures, cb.resetTimeout)
	}
}

// CanProceed reports whether advisory calls are currently allowed. An open
// breaker moves to half-open once the reset timeout has passed.
func (cb *CircuitBreaker) CanProceed() bool {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if !cb.isOpen {
		return true
	}

	if time.Since(cb.lastFailureTime) > cb.resetTimeout {
		log.Printf("Enrichment: circuit breaker half-open after %v", cb.resetTimeout)
		cb.isOpen = false
		cb.consecutiveFailures = 0
		return true
	}

	return false
}

// Status returns the breaker state for diagnostics.
func (cb *CircuitBreaker) Status() (isOpen bool, consecutiveFailures, total int) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.isOpen, cb.consecutiveFailures, cb.totalCalls
}
