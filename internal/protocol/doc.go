// Package protocol is the contract between the live drag preview and the
// authoritative order. The preview side turns a committed drop into a
// Request; the authority applies it to the collection and notifies the
// registered listeners. Drops are only accepted through a Guard bound to
// one layout.
package protocol
