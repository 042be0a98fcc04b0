package external

import (
	"sync"
	"time"

	"weatherplaylist.app/internal/ports"
)

// cacheStatsRecorder backs the CacheMetrics methods of both cache backends
type cacheStatsRecorder struct {
	mutex      sync.RWMutex
	hits       int64
	misses     int64
	operations map[string]*operationTotals
}

type operationTotals struct {
	count int64
	total time.Duration
}

func (s *cacheStatsRecorder) recordHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hits++
}

func (s *cacheStatsRecorder) recordMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.misses++
}

func (s *cacheStatsRecorder) recordOperation(operation string, duration time.Duration) {
	if operation == "" {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.operations == nil {
		s.operations = make(map[string]*operationTotals)
	}
	totals, ok := s.operations[operation]
	if !ok {
		totals = &operationTotals{}
		s.operations[operation] = totals
	}
	totals.count++
	totals.total += duration
}

func (s *cacheStatsRecorder) snapshot(now time.Time) ports.CacheStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := s.hits + s.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(s.hits) / float64(total)
	}

	operations := make(map[string]ports.CacheOperationStats, len(s.operations))
	for name, totals := range s.operations {
		operations[name] = ports.CacheOperationStats{
			Count:       totals.count,
			AvgDuration: totals.total / time.Duration(totals.count),
		}
	}

	return ports.CacheStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		Operations:  operations,
		LastUpdated: now,
	}
}
