// Package store is an in-memory record source applying the same predicate
// semantics as the SQL pushdown, including the descending day/created_at
// order. It backs the service when no database is configured (every fetch
// then yields an empty row set until seeded) and serves as the source
// double in tests.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/DiogoCoutinz/DashboardComercial/internal/filter"
	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

type MemoryStore struct {
	mu          sync.RWMutex
	prospecting []models.ProspectingRecord
	pipeline    []models.PipelineRecord
	revenue     []models.RevenueRecord
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) SeedProspecting(rows ...models.ProspectingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prospecting = append(s.prospecting, rows...)
}

func (s *MemoryStore) SeedPipeline(rows ...models.PipelineRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipeline = append(s.pipeline, rows...)
}

func (s *MemoryStore) SeedRevenue(rows ...models.RevenueRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue = append(s.revenue, rows...)
}

func (s *MemoryStore) Prospecting(_ context.Context, f filter.Prospecting) []models.ProspectingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.ProspectingRecord{}
	for _, r := range s.prospecting {
		if !inRange(r.Day, f.StartDate, f.EndDate) {
			continue
		}
		if !member(f.Agents, r.Agent) || !member(f.Channels, r.Channel) || !member(f.Offers, r.Offer) {
			continue
		}
		if !period(f.Year, f.Quarter, f.Month, r.Year, r.Quarter, r.Month) {
			continue
		}
		out = append(out, r)
	}
	sortByRecency(out, func(r models.ProspectingRecord) (time.Time, time.Time) { return r.Day, r.CreatedAt })
	return out
}

func (s *MemoryStore) Pipeline(_ context.Context, f filter.Pipeline) []models.PipelineRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.PipelineRecord{}
	for _, r := range s.pipeline {
		if !inRange(r.Day, f.StartDate, f.EndDate) {
			continue
		}
		if !member(f.Closers, r.Closer) || !member(f.Offers, r.Offer) {
			continue
		}
		if !member(f.OriginAgents, r.OriginAgent) || !member(f.OriginChannels, r.OriginChannel) {
			continue
		}
		if !period(f.Year, f.Quarter, f.Month, r.Year, r.Quarter, r.Month) {
			continue
		}
		out = append(out, r)
	}
	sortByRecency(out, func(r models.PipelineRecord) (time.Time, time.Time) { return r.Day, r.CreatedAt })
	return out
}

func (s *MemoryStore) Revenue(_ context.Context, f filter.Revenue) []models.RevenueRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.RevenueRecord{}
	for _, r := range s.revenue {
		if !inRange(r.Day, f.StartDate, f.EndDate) {
			continue
		}
		if !member(f.Executives, r.Executive) || !member(f.Offers, r.Offer) || !member(f.Markets, r.Market) {
			continue
		}
		if !member(f.Closers, r.Closer) || !member(f.Consultants, r.Consultant) || !member(f.Channels, r.Channel) {
			continue
		}
		if f.Kind != "" && r.Kind != f.Kind {
			continue
		}
		if !period(f.Year, f.Quarter, f.Month, r.Year, r.Quarter, r.Month) {
			continue
		}
		out = append(out, r)
	}
	sortByRecency(out, func(r models.RevenueRecord) (time.Time, time.Time) { return r.Day, r.CreatedAt })
	return out
}

func inRange(day time.Time, start, end string) bool {
	if d, ok := filter.ParseDay(start); ok && day.Before(d) {
		return false
	}
	if d, ok := filter.ParseDay(end); ok && day.After(d) {
		return false
	}
	return true
}

// member is set membership with the empty set meaning "no constraint".
func member(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

func period(year int, quarter, month string, ry int, rq, rm string) bool {
	if year != 0 && ry != year {
		return false
	}
	if quarter != "" && rq != quarter {
		return false
	}
	if month != "" && rm != month {
		return false
	}
	return true
}

func sortByRecency[R any](rows []R, keys func(R) (day, created time.Time)) {
	sort.SliceStable(rows, func(i, j int) bool {
		di, ci := keys(rows[i])
		dj, cj := keys(rows[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return ci.After(cj)
	})
}
