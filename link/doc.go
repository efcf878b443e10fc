// Package link implements a label whose text may contain any number of
// independently tappable links.
//
// A Label owns a display buffer of styled text (rich.Content) and a
// Registry of tagged character ranges. Text is built up with Append and
// AppendLink; each call to AppendLink records the range the new text
// occupies. When a pointer is released over the label, a Resolver lays
// the text out afresh, finds the character under the pointer and the
// Registry maps it to a tag, which is passed to the label's Observer.
//
// All methods are meant to be called from the goroutine that owns the
// label's display. Nothing here is safe for concurrent use.
package link
