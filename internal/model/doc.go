// Package model defines the layout's domain data: item identities, size-class
// tags, the ordered item collection and the events produced when a drag
// commits a new order. Nothing here knows about rendering; the collection is
// the single source of truth the view is reconciled against.
package model
