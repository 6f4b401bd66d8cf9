package api

import (
	"errors"

	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/locks"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

var (
	// ErrUnknownNode informs that the channel references a node which was never configured.
	ErrUnknownNode = errors.New("node is not configured")

	// ErrNodeNotRunning informs that the node is configured but its lists are not available (not connected).
	ErrNodeNotRunning = lists.ErrNodeNotRunning

	// ErrListNotProvisioned informs that the list number exceeds lists count of the node.
	ErrListNotProvisioned = lists.ErrListNotProvisioned

	// ErrChannelLocked informs that the list is locked by another client.
	ErrChannelLocked = locks.ErrLockedByOther

	// ErrValidation informs about malformed operation arguments.
	ErrValidation = lists.ErrInvalidArgument

	// ErrTimecodeParse informs about malformed timecode arguments.
	ErrTimecodeParse = timecode.ErrParse

	// ErrUnknownClient informs that the client identity is not connected.
	ErrUnknownClient = errors.New("client is not connected")
)
