// Package popup implements a floating panel anchored to a trigger element.
//
// Lifecycle:
//   - A Popup is Closed until Open is called. IsOpen flips synchronously on
//     Open and Close; animation and the closed event trail behind it.
//   - Open cancels any pending deferred close, injects the configured
//     template once for the popup's lifetime, halts running animations and
//     starts the enter animation. The positioning refresh is scheduled for a
//     later turn because the panel may not have its final size yet.
//   - Close halts running animations, starts the exit animation and arms the
//     deferred close. ClosedMsg is emitted once the configured transition
//     duration has elapsed, or on exit completion with CloseOnTransitionEnd.
//     A reopen before then cancels it.
//
// Every timer, frame and refresh message carries a handle or generation, and
// stale ones are dropped when they arrive. Nothing is queued.
//
// A Trigger wraps a Popup the way an anchoring directive would: it binds the
// anchor, reacts to hover, click, outside click and focus, delays opening,
// and unmounts the popup when ClosedMsg arrives.
package popup
