package events

import "github.com/atomicstack/anchored-popup/internal/logging"

type PopupTracer struct{}

type TriggerTracer struct{}

type CloseReason string

const (
	CloseReasonTimer      CloseReason = "timer"
	CloseReasonTransition CloseReason = "transition"
)

var (
	Popup   = PopupTracer{}
	Trigger = TriggerTracer{}
)

func (PopupTracer) Open(id int, placement string) {
	logging.Trace("popup.open", map[string]interface{}{"id": id, "placement": placement})
}

func (PopupTracer) Close(id int, duration int64) {
	logging.Trace("popup.close", map[string]interface{}{"id": id, "durationMs": duration})
}

// Closed records emission of the closed event.
func (PopupTracer) Closed(id int, reason CloseReason) {
	logging.Trace("popup.closed", map[string]interface{}{"id": id, "reason": string(reason)})
}

// CancelClose records a pending deferred close being superseded by a reopen.
func (PopupTracer) CancelClose(id int) {
	logging.Trace("popup.close.cancel", map[string]interface{}{"id": id})
}

func (PopupTracer) Inject(id int) {
	logging.Trace("popup.template.inject", map[string]interface{}{"id": id})
}

func (PopupTracer) Anchor(id int, x, y, width, height int) {
	logging.Trace("popup.anchor", map[string]interface{}{
		"id":     id,
		"x":      x,
		"y":      y,
		"width":  width,
		"height": height,
	})
}

func (PopupTracer) Refresh(id int, preferred, placement string) {
	logging.Trace("popup.refresh", map[string]interface{}{
		"id":        id,
		"preferred": preferred,
		"placement": placement,
		"flipped":   preferred != placement,
	})
}

func (TriggerTracer) Mount(id int, mode string) {
	logging.Trace("trigger.mount", map[string]interface{}{"popup": id, "mode": mode})
}

func (TriggerTracer) Unmount(id int) {
	logging.Trace("trigger.unmount", map[string]interface{}{"popup": id})
}

func (TriggerTracer) OutsideClick(id int, x, y int) {
	logging.Trace("trigger.outside-click", map[string]interface{}{"popup": id, "x": x, "y": y})
}
