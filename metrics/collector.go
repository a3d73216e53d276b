package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Simulations  int
	FullPlayouts int
	Cutoffs      int
	Cutoff       int
	Nodes        int
}

// Simulations completed per second of wall time.
func (m SearchMetric) Throughput() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Simulations) / m.Duration.Seconds()
}

type MoveMetric struct {
	Step   int
	Player int // 0 for Player One, 1 for Player Two
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Winner     int // -1 without a winner
	TotalMoves int
	Captures   [2]int
}

type Collector interface {
	Start(goroutines, cutoff int)
	AddSimulation()
	AddFullPlayout()
	AddCutoff()
	SetNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	simulations  atomic.Int64
	fullPlayouts atomic.Int64
	cutoffs      atomic.Int64
	nodes        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.simulations.Store(0)
	m.fullPlayouts.Store(0)
	m.cutoffs.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetNodes(n int) {
	m.nodes.Store(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Simulations:  int(m.simulations.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		Cutoff:       m.cutoff,
		Nodes:        int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int) {}
func (m *dummyCollector) AddSimulation()               {}
func (m *dummyCollector) AddFullPlayout()              {}
func (m *dummyCollector) AddCutoff()                   {}
func (m *dummyCollector) SetNodes(n int)               {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
