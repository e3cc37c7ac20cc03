package metrics

import (
	"time"
)

// testRecorder counts calls; other packages' tests use their own fakes.
type testRecorder struct {
	stageDurations map[string]int
	runDurations   int
	outcomes       map[RunOutcome]int
	sections       int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{stageDurations: map[string]int{}, outcomes: map[RunOutcome]int{}}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveRunDuration(_ time.Duration) { t.runDurations++ }
func (t *testRecorder) IncRunOutcome(outcome RunOutcome)   { t.outcomes[outcome]++ }
func (t *testRecorder) SetSectionsIncluded(n int)          { t.sections = n }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = newTestRecorder()
)
