package events

import "github.com/atomicstack/anchored-popup/internal/logging"

type TransitionTracer struct{}

var Transition = TransitionTracer{}

func (TransitionTracer) Start(controller, seq int, kind, direction string, durationMs int64) {
	logging.Trace("transition.start", map[string]interface{}{
		"controller": controller,
		"seq":        seq,
		"kind":       kind,
		"direction":  direction,
		"durationMs": durationMs,
	})
}

func (TransitionTracer) Stop(controller, seq int, visible bool) {
	logging.Trace("transition.stop", map[string]interface{}{"controller": controller, "seq": seq, "visible": visible})
}

func (TransitionTracer) Complete(controller, seq int) {
	logging.Trace("transition.complete", map[string]interface{}{"controller": controller, "seq": seq})
}
