// Package ui contains the Bubble Tea program that demonstrates anchored
// popups.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key, mouse,
//     window size and tracker messages go through a typed handler registry.
//   - Everything else (popup refreshes, deferred timer fires, animation
//     frames, closed events) is broadcast to every anchor's popup.Trigger;
//     each popup drops messages that carry another owner's id.
//   - Mouse presses first ask mounted popups whether the panel captures the
//     click. A captured click stops there, so it never reaches the outside
//     click handling of any trigger.
//
// Layout:
//   - Anchors are laid out in a grid reaching every screen edge, so popups
//     near an edge flip to the other side of their anchor.
//   - Filtering and resizing move anchors. A tracking.Tracker polls anchor
//     bounds and open popups are repositioned when their anchor moved.
//   - View draws the grid on a fixed canvas and composites each mounted
//     popup's layer and arrow over it.
package ui
