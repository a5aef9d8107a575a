package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStats(t *testing.T) {
	s := NewSessionStats()
	assert.Zero(t, s.Wins())
	assert.Zero(t, s.BestDuration())
	assert.Zero(t, s.AverageDuration())
	assert.Zero(t, s.MedianDuration())

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, secs := range []int{30, 10, 20, 40} {
		r := s.AddRun("run", start, start.Add(time.Duration(secs)*time.Second), i, i*2)
		assert.Equal(t, float64(secs), r.Duration)
	}

	assert.Equal(t, 4, s.Wins())
	assert.Equal(t, 10.0, s.BestDuration())
	assert.Equal(t, 25.0, s.AverageDuration())
	assert.Equal(t, 25.0, s.MedianDuration())

	s.AddRun("run", start, start.Add(5*time.Second), 0, 0)
	assert.Equal(t, 20.0, s.MedianDuration())
}
