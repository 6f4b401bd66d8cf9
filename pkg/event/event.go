package event

import (
	"strings"

	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// Type specifies the kind of scheduled item.
type Type string

const (
	Primary   Type = "primary"
	Secondary Type = "secondary"

	// Break separates on-air segments. Ripple never crosses it.
	Break Type = "break"
)

// Control holds automation flags controlling how device plays an event.
type Control uint32

const (
	AutoPlay Control = 1 << iota
	AutoThread
	AutoTimed
	AutoRecord
	AutoSwitch
	AutoUpcount
	AutoMarkTime
	AutoContact
)

// Status holds run status flags reported by device for an event.
type Status uint32

const (
	Cued Status = 1 << iota
	Running
	Done
	Error
	Skipped
	Prerolled
	Played
	Standby
	Protected
	Threaded
)

// Transition specifies effect used when event goes on air.
type Transition string

const (
	Cut     Transition = "cut"
	Mix     Transition = "mix"
	MixedAV Transition = "mixedAV"
	Wipe    Transition = "wipe"
)

// Rate specifies speed of a transition effect.
type Rate string

const (
	Slow   Rate = "slow"
	Medium Rate = "medium"
	Fast   Rate = "fast"
)

// Event is a single record of a list.
type Event struct {
	ID             string            `json:"ID"`
	Type           Type              `json:"Type"`
	PrimaryID      string            `json:"PrimaryID,omitempty"`
	Title          string            `json:"Title"`
	MediaID        string            `json:"MediaID"`
	OnAirTime      timecode.TimeCode `json:"OnAirTime"`
	Duration       timecode.TimeCode `json:"Duration"`
	Transition     Transition        `json:"Transition"`
	TransitionRate Rate              `json:"TransitionRate"`
	Control        Control           `json:"Control"`
	Status         Status            `json:"Status"`
}

// IsPrimary informs whether event is a primary-level record (breaks included).
func (e Event) IsPrimary() bool {
	return e.Type != Secondary
}

func (c Control) Has(flag Control) bool {
	return c&flag == flag
}

func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

func (s Status) With(flag Status) Status {
	return s | flag
}

func (s Status) Without(flag Status) Status {
	return s &^ flag
}

// SpeedUnits returns duration of transition in speed units.
// Unknown rates are treated as Medium.
func (r Rate) SpeedUnits() int {
	switch r {
	case Slow:
		return 60
	case Fast:
		return 15
	default:
		return 30
	}
}

// Offsets informs whether transition overlaps previous event, requiring on-air time to be pulled back.
func (t Transition) Offsets() bool {
	return t == Mix || t == MixedAV || t == Wipe
}

// Filter selects events by their attributes. Zero-valued fields do not constrain the selection.
type Filter struct {
	Types   []Type  `json:"Types"`
	Status  Status  `json:"Status"`
	Control Control `json:"Control"`
	Title   string  `json:"Title"`
}

// Matches informs whether event passes all of the filter constraints.
func (f Filter) Matches(e Event) bool {
	if len(f.Types) > 0 && !containsType(f.Types, e.Type) {
		return false
	}

	if f.Status != 0 && !e.Status.Has(f.Status) {
		return false
	}

	if f.Control != 0 && !e.Control.Has(f.Control) {
		return false
	}

	return f.Title == "" || strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.Title))
}

func containsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}

	return false
}
