package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/labtrack/labtrack/internal/activity/domain"
)

// MemoryLogRepository holds the activity log in process memory
type MemoryLogRepository struct {
	mu      sync.RWMutex
	entries []domain.LogEntry
}

func NewMemoryLogRepository() *MemoryLogRepository {
	return &MemoryLogRepository{}
}

func (r *MemoryLogRepository) Append(entry *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

// FindAll returns entries newest-first
func (r *MemoryLogRepository) FindAll() ([]domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.LogEntry, len(r.entries))
	copy(entries, r.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// FindSince returns entries at or after the cutoff, oldest-first
func (r *MemoryLogRepository) FindSince(cutoff time.Time) ([]domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []domain.LogEntry
	for _, e := range r.entries {
		if !e.Timestamp.Before(cutoff) {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}
