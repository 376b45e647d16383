// Package picker implements a filterable multi-select list engine.
//
// A Store holds the eligible candidates of one picking session, sorted once at
// load time. A Controller mutates selection flags in response to user intent
// (toggle, select all visible, select none visible, auto-select default) and
// finishes the session with Commit or Cancel. Derived views such as the visible
// subset and the selection counter are computed on every read, so a UI built on
// top simply re-renders after each controller call.
//
// Neither type is safe for concurrent use; a session is owned by one caller.
package picker
