package rank

import "github.com/poiesic/hirank/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a rank.
type RankMonitor interface {
	Start(query string)
	AfterQueryEmbedding(vector []float32)
	AfterSimilaritySearch(matches []*core.DocumentMatch)
	CandidateHit(candidateID core.ID, score float64)
	Finish(scores []*core.CandidateScore)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterQueryEmbedding(_ []float32)              {}
func (n *noopMonitor) AfterSimilaritySearch(_ []*core.DocumentMatch) {}
func (n *noopMonitor) CandidateHit(_ core.ID, _ float64)            {}
func (n *noopMonitor) Finish(_ []*core.CandidateScore)              {}
