// Package store keeps processed payment summaries in memory. Summaries live
// for the lifetime of the process; there is no eviction and no deletion.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// SummaryStore is a concurrency-safe map of payment summaries keyed by id.
// Construct with NewSummaryStore and inject; it is not a package singleton.
type SummaryStore struct {
	mu        sync.RWMutex
	summaries map[uuid.UUID]models.PaymentSummary
}

func NewSummaryStore() *SummaryStore {
	return &SummaryStore{summaries: make(map[uuid.UUID]models.PaymentSummary)}
}

// Add stores a summary under its id. Summaries are immutable after this.
func (s *SummaryStore) Add(summary models.PaymentSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ID] = summary
}

// Get returns the summary for id and whether it exists.
func (s *SummaryStore) Get(id uuid.UUID) (models.PaymentSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	return summary, ok
}

// Len reports the number of stored summaries.
func (s *SummaryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.summaries)
}
