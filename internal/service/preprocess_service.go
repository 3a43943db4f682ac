package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/orderpdf/order-document-service/internal/domain"
	"github.com/orderpdf/order-document-service/internal/eligibility"
	"github.com/orderpdf/order-document-service/internal/envelope"
)

// PreprocessResult is the output of one preprocessing invocation: the accepted
// references in input order plus a completion timestamp.
type PreprocessResult struct {
	Items     []domain.OrderReference
	Timestamp time.Time
}

// PreprocessService defines the interface for the envelope preprocessing stage
type PreprocessService interface {
	// Preprocess parses a batch of raw change-event envelopes and returns the
	// references that are eligible for document generation. It never fails as
	// a whole: bad envelopes are skipped with a diagnostic.
	Preprocess(ctx context.Context, envelopes []string) *PreprocessResult
}

// PreprocessServiceImpl implements PreprocessService with a bounded worker pool
type PreprocessServiceImpl struct {
	policy     eligibility.Policy
	workerPool chan struct{}
}

// NewPreprocessService creates a new PreprocessService
func NewPreprocessService(policy eligibility.Policy, maxWorkers int) *PreprocessServiceImpl {
	if maxWorkers <= 0 {
		maxWorkers = 5 // Default to 5 workers
	}

	return &PreprocessServiceImpl{
		policy:     policy,
		workerPool: make(chan struct{}, maxWorkers),
	}
}

// Preprocess runs the parse + eligibility pipeline over the batch. Envelopes are
// independent, so they are checked in parallel; results are collected by index
// so the accepted list preserves input order.
func (s *PreprocessServiceImpl) Preprocess(ctx context.Context, envelopes []string) *PreprocessResult {
	log.Printf("Preprocessing %d change records", len(envelopes))

	accepted := make([]*domain.OrderReference, len(envelopes))

	var wg sync.WaitGroup
	for i, raw := range envelopes {
		wg.Add(1)
		go func(idx int, body string) {
			defer wg.Done()
			accepted[idx] = s.processOne(idx, body)
		}(i, raw)
	}
	wg.Wait()

	items := make([]domain.OrderReference, 0, len(envelopes))
	for _, ref := range accepted {
		if ref != nil {
			items = append(items, *ref)
		}
	}

	log.Printf("Preprocessed %d eligible items out of %d total records", len(items), len(envelopes))

	return &PreprocessResult{
		Items:     items,
		Timestamp: time.Now(),
	}
}

// processOne handles a single envelope. A failure of any kind, including a
// panic, only drops this envelope, never the batch.
func (s *PreprocessServiceImpl) processOne(idx int, body string) (ref *domain.OrderReference) {
	s.workerPool <- struct{}{}
	defer func() { <-s.workerPool }()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Failed to process change record %d: %v", idx, r)
			ref = nil
		}
	}()

	parsed := envelope.Parse(body)
	if parsed == nil {
		return nil
	}

	if !eligibility.ShouldProcess(parsed, s.policy) {
		log.Printf("Order %s not eligible for processing (policy: %s)", parsed.OrderID, s.policy)
		return nil
	}

	log.Printf("Added eligible order item for processing: orderId=%s", parsed.OrderID)
	return parsed
}
