package game

import (
	"sort"
	"time"
)

// RunRecord describes one won run.
type RunRecord struct {
	ID         string
	StartTime  time.Time
	EndTime    time.Time
	Duration   float64 // seconds
	KeyPresses int
	WallHits   int
}

// SessionStats keeps the won runs of this process. Nothing is persisted.
type SessionStats struct {
	Runs []RunRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Runs: make([]RunRecord, 0),
	}
}

// AddRun records a won run and returns the stored record.
func (s *SessionStats) AddRun(id string, start, end time.Time, keyPresses, wallHits int) RunRecord {
	record := RunRecord{
		ID:         id,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start).Seconds(),
		KeyPresses: keyPresses,
		WallHits:   wallHits,
	}
	s.Runs = append(s.Runs, record)
	return record
}

func (s *SessionStats) Wins() int {
	return len(s.Runs)
}

// BestDuration returns the fastest win in seconds, 0 without wins.
func (s *SessionStats) BestDuration() float64 {
	if len(s.Runs) == 0 {
		return 0
	}
	best := s.Runs[0].Duration
	for _, r := range s.Runs[1:] {
		if r.Duration < best {
			best = r.Duration
		}
	}
	return best
}

func (s *SessionStats) AverageDuration() float64 {
	if len(s.Runs) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range s.Runs {
		total += r.Duration
	}
	return total / float64(len(s.Runs))
}

// MedianDuration returns the median win time in seconds.
func (s *SessionStats) MedianDuration() float64 {
	n := len(s.Runs)
	if n == 0 {
		return 0
	}
	durations := make([]float64, n)
	for i, r := range s.Runs {
		durations[i] = r.Duration
	}
	sort.Float64s(durations)
	if n%2 == 1 {
		return durations[n/2]
	}
	return (durations[n/2-1] + durations[n/2]) / 2
}
