package rank

import "github.com/talentsift/assessrec/core"

// Monitor receives pipeline stage notifications. Implementations must be
// fast and non-blocking; the pipeline calls them inline.
type Monitor interface {
	// IntentResolved is called once the query intent is known.
	IntentResolved(query string, it *core.Intent)

	// Retrieved reports the retrieval pool size.
	Retrieved(count int)

	// Filtered reports candidate counts around constraint filtering.
	Filtered(before, after int)

	// Reranked reports how many candidates went through LLM reranking.
	Reranked(count int)

	// Selected reports the final recommendation count.
	Selected(count int)
}

// NoopMonitor is a Monitor that does nothing.
type NoopMonitor struct{}

var _ Monitor = NoopMonitor{}

func (NoopMonitor) IntentResolved(string, *core.Intent) {}
func (NoopMonitor) Retrieved(int)                       {}
func (NoopMonitor) Filtered(int, int)                   {}
func (NoopMonitor) Reranked(int)                        {}
func (NoopMonitor) Selected(int)                        {}
