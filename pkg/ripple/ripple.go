// Package ripple recomputes on-air times of a chain of events after one of them was edited.
//
// The walk starts at an edited event and continues until a break or the end of the list.
// Primary events that are AutoTimed and are not AutoRecord follow each other back to back:
// the first of them anchors the chain and every next one starts when the previous one ends,
// pulled back by the length of its transition effect. Any other event is left untouched and
// does not move the chain.
package ripple

import (
	"errors"
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// Classification describes how stored on-air times relate to the rippled ones.
type Classification string

const (
	Equal   Classification = "equal"
	Greater Classification = "greater"
	Less    Classification = "less"
)

var (
	// ErrEventNotFound informs that the event to start rippling from is not on the list.
	ErrEventNotFound = errors.New("ripple start event not found")
)

// Result holds outcome of rippling.
type Result struct {
	Classification Classification    `json:"Classification"`
	Holdtime       timecode.TimeCode `json:"Holdtime"`
	Modified       []event.Event     `json:"Modified"`
}

// Ripple walks events starting at the one with startID and returns events with recomputed on-air times.
// Provided events are not modified. now is the node wall-clock, used to resolve day wraparound;
// Empty disables wraparound correction.
func Ripple(events []event.Event, startID string, now timecode.TimeCode) (Result, error) {
	start := -1
	for idx, ev := range events {
		if ev.ID == startID {
			start = idx
			break
		}
	}

	if start < 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrEventNotFound, startID)
	}

	result := Result{
		Classification: Equal,
		Modified:       []event.Event{},
	}

	holdtime := timecode.Empty
	for _, ev := range events[start:] {
		if ev.Type == event.Break {
			break
		}

		if !follows(ev) {
			continue
		}

		if holdtime.IsEmpty() {
			if !ev.OnAirTime.IsEmpty() {
				holdtime = ev.OnAirTime.Add(ev.Duration)
			}

			continue
		}

		if ev.Transition.Offsets() {
			holdtime = holdtime.Sub(TransitionOffset(ev.TransitionRate, holdtime.Rate(), holdtime.DropFrame()))
		}

		if !ev.OnAirTime.IsEmpty() {
			if drift := Classify(ev.OnAirTime, holdtime, now); drift != Equal {
				result.Classification = drift
			}
		}

		if ev.OnAirTime.IsEmpty() || !ev.OnAirTime.Equal(holdtime) {
			ev.OnAirTime = holdtime
			result.Modified = append(result.Modified, ev)
		}

		holdtime = holdtime.Add(ev.Duration)
	}

	result.Holdtime = holdtime
	return result, nil
}

// TransitionOffset returns length of a transition effect: its speed units split into
// seconds and frames using 25 frames per second for PAL and 30 otherwise.
func TransitionOffset(rate event.Rate, frameRate timecode.FrameRate, dropFrame bool) timecode.TimeCode {
	fps := 30
	if frameRate == timecode.PAL {
		fps = 25
	}

	units := rate.SpeedUnits()
	return timecode.MustNew(0, 0, units/fps, units%fps, frameRate, dropFrame && frameRate != timecode.PAL)
}

// Classify compares stored on-air time of an event with the holdtime it is going to receive.
//
// Stored time is taken at its next occurrence counting from now: a day is added when it is
// earlier than now. Holdtime is not moved, so the difference between the two spans up to two days.
// A positive difference shorter than half a day means stored time is ahead (Greater), a negative
// one means it lags behind (Less). Differences of half a day or more are read as a wraparound and
// the sense flips.
func Classify(stored, holdtime, now timecode.TimeCode) Classification {
	rate := stored.Rate()
	dropFrame := stored.DropFrame()

	expected := holdtime
	if expected.Rate() != rate || expected.DropFrame() != dropFrame {
		expected = timecode.FromDuration(expected.Duration(), rate, dropFrame)
	}

	if stored.Equal(expected) {
		return Equal
	}

	framesPerDay := timecode.FramesPerDay(rate, dropFrame)
	hard := stored.TotalFrames()
	if !now.IsEmpty() && stored.Before(now) {
		hard += framesPerDay
	}

	difference := hard - expected.TotalFrames()
	ahead := difference > 0
	if difference < 0 {
		difference = -difference
	}

	if difference >= framesPerDay/2 {
		ahead = !ahead
	}

	if ahead {
		return Greater
	}

	return Less
}

func follows(ev event.Event) bool {
	return ev.Type == event.Primary && ev.Control.Has(event.AutoTimed) && !ev.Control.Has(event.AutoRecord)
}
