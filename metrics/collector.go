package metrics

import (
	"time"
)

type SearchMetric struct {
	MaxLevel        int
	Duration        time.Duration
	DevelopedStates int
	PeakFrontier    int
	Solved          bool
	SolutionLevel   int
}

// RunRecord ties one solve to the experiment inputs that produced it.
type RunRecord struct {
	Scramble     int // Scramble depth of the initial state
	Heuristic    string
	InitialState int
	SearchMetric
}

type Collector interface {
	Start(maxLevel int)
	AddDeveloped()
	ObserveFrontier(size int)
	SetSolved(level int)
	Complete() SearchMetric
}

type collector struct {
	maxLevel      int
	startTime     time.Time
	developed     int
	peakFrontier  int
	solved        bool
	solutionLevel int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxLevel int) {
	m.startTime = time.Now()
	m.maxLevel = maxLevel
	m.developed = 0
	m.peakFrontier = 0
	m.solved = false
	m.solutionLevel = 0
}

func (m *collector) AddDeveloped() {
	m.developed++
}

func (m *collector) ObserveFrontier(size int) {
	if size > m.peakFrontier {
		m.peakFrontier = size
	}
}

func (m *collector) SetSolved(level int) {
	m.solved = true
	m.solutionLevel = level
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxLevel:        m.maxLevel,
		Duration:        time.Since(m.startTime),
		DevelopedStates: m.developed,
		PeakFrontier:    m.peakFrontier,
		Solved:          m.solved,
		SolutionLevel:   m.solutionLevel,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxLevel int)       {}
func (m *dummyCollector) AddDeveloped()            {}
func (m *dummyCollector) ObserveFrontier(size int) {}
func (m *dummyCollector) SetSolved(level int)      {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
