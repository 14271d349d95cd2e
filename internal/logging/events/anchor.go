package events

import "github.com/atomicstack/anchored-popup/internal/logging"

type AnchorTracer struct{}

var Anchor = AnchorTracer{}

func (AnchorTracer) Moved(key string, x, y, width, height int) {
	logging.Trace("anchor.moved", map[string]interface{}{
		"anchor": key,
		"x":      x,
		"y":      y,
		"width":  width,
		"height": height,
	})
}

func (AnchorTracer) Focus(key string) {
	logging.Trace("anchor.focus", map[string]interface{}{"anchor": key})
}

func (AnchorTracer) Filter(query string, matches int) {
	logging.Trace("anchor.filter", map[string]interface{}{"query": query, "matches": matches})
}
