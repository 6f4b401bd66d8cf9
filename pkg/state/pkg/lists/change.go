package lists

import (
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/event"
)

// ChangeVariant specifies what happened to a list.
type ChangeVariant string

const (
	// EventsAdded notifies about events inserted at Index.
	EventsAdded ChangeVariant = "eventsAdded"

	// EventsUpdated notifies about events modified in place (including rippled on-air times).
	EventsUpdated ChangeVariant = "eventsUpdated"

	// EventsDeleted notifies about removal of events with IDs.
	EventsDeleted ChangeVariant = "eventsDeleted"

	// EventsMoved notifies about events with IDs being moved to Index.
	EventsMoved ChangeVariant = "eventsMoved"

	// ListCleared notifies about removal of all events.
	ListCleared ChangeVariant = "listCleared"

	// ListRefreshed notifies that background refresh pulled changed content from device.
	ListRefreshed ChangeVariant = "listRefreshed"

	ListNameChanged       ChangeVariant = "listNameChanged"
	LookaheadChanged      ChangeVariant = "lookaheadChanged"
	ListCommandPerformed  ChangeVariant = "listCommandPerformed"
	EventCommandPerformed ChangeVariant = "eventCommandPerformed"
)

// Change describes a single mutation of a list.
type Change struct {
	ChangeVariant ChangeVariant   `json:"Variant"`
	Channel       channel.Channel `json:"Channel"`
	Command       string          `json:"Command,omitempty"`
	Events        []event.Event   `json:"Events,omitempty"`
	IDs           []string        `json:"IDs,omitempty"`
	Index         int             `json:"Index"`
	Revision      uint64          `json:"Revision"`
}

func (c Change) Variant() ChangeVariant {
	return c.ChangeVariant
}

// NodeChangeVariant specifies what happened to node lists held in Storage.
type NodeChangeVariant string

const (
	// NodeInitialized notifies that handles of all node lists were created.
	NodeInitialized NodeChangeVariant = "nodeInitialized"

	// NodeRemoved notifies that handles of node lists were disposed.
	NodeRemoved NodeChangeVariant = "nodeRemoved"
)

// NodeChange informs about node lists being added to or removed from Storage.
type NodeChange struct {
	ChangeVariant NodeChangeVariant
	Node          string
	Lists         int
}

func (c NodeChange) Variant() NodeChangeVariant {
	return c.ChangeVariant
}
