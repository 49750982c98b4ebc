// Package ui holds the memo view controller.
//
// The controller owns transient interaction state only: the editor modal,
// its lock toggle, the current page and the set of memos unlocked since the
// last navigation. Persistent state lives in the memo store. Rendering is a
// pure function from ViewState to RenderModel so it can be tested without a
// terminal; the cli package draws the model and binds commands to the
// controller.
package ui
