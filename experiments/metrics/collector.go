package metrics

import (
	"time"
)

type SearchMetric struct {
	Agent        string
	Duration     time.Duration
	Iterations   int
	FullPlayouts int
	TerminalHits int
	TreeSize     int
}

type MoveMetric struct {
	Step   int
	Player string // Mark of the player that moved
	Move   string // Algebraic coordinate
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics of a single search. Searches run on one
// goroutine, so implementations need no synchronization.
type Collector interface {
	Start(agent string)
	AddIteration()
	AddFullPlayout()
	AddTerminalHit()
	SetTreeSize(nodes int)
	Complete() SearchMetric
}

type collector struct {
	agent        string
	startTime    time.Time
	iterations   int
	fullPlayouts int
	terminalHits int
	treeSize     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(agent string) {
	*m = collector{agent: agent, startTime: time.Now()}
}

func (m *collector) AddIteration() {
	m.iterations++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddTerminalHit() {
	m.terminalHits++
}

func (m *collector) SetTreeSize(nodes int) {
	m.treeSize = nodes
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Agent:        m.agent,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		FullPlayouts: m.fullPlayouts,
		TerminalHits: m.terminalHits,
		TreeSize:     m.treeSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string)     {}
func (m *dummyCollector) AddIteration()          {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddTerminalHit()        {}
func (m *dummyCollector) SetTreeSize(nodes int)  {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
