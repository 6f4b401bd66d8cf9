package timecode

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// FrameRate specifies nominal frame rate of a timecode.
type FrameRate int

const (
	// NTSC is a 30 frames (29.97 when drop-frame counting is used) per second rate.
	NTSC FrameRate = 30

	// PAL is a 25 frames per second rate.
	PAL FrameRate = 25
)

const (
	dropFramesPerMinute  = 2
	framesPerDropMinute  = 30*60 - dropFramesPerMinute
	framesPerDrop10Min   = 10*30*60 - 9*dropFramesPerMinute
	dropFrameDayFrames   = 24 * 6 * framesPerDrop10Min
	emptyBCD             = 0xFFFFFFFF
	fieldSeparator       = ':'
	dropFrameSeparator   = ';'
	timecodeTextLength   = len("00:00:00:00")
	emptyTimecodeString  = "--:--:--:--"
	secondsPerDay        = 24 * 60 * 60
	nanosecondsPerSecond = int64(time.Second)
)

var (
	// ErrParse informs that provided text is not a valid timecode.
	ErrParse = errors.New("could not parse timecode")

	// ErrInvalid informs that provided timecode fields are out of range for the frame rate.
	ErrInvalid = errors.New("invalid timecode")
)

// FramesPerSecond returns nominal number of frames in a second.
// Unknown rates are treated as NTSC.
func (r FrameRate) FramesPerSecond() int {
	if r == PAL {
		return 25
	}

	return 30
}

func (r FrameRate) normalized() FrameRate {
	if r == PAL {
		return PAL
	}

	return NTSC
}

// TimeCode is a hour:minute:second:frame position within a single day.
// The zero value is Empty and denotes an unset timecode.
type TimeCode struct {
	drop   bool
	frames int64
	rate   FrameRate
	set    bool
}

type timeCodeJSON struct {
	Value     string    `json:"Value"`
	Rate      FrameRate `json:"Rate"`
	DropFrame bool      `json:"DropFrame"`
}

// Empty is the "unset" timecode sentinel.
var Empty = TimeCode{}

// New constructs timecode from its fields, validating them against provided rate.
// Drop-frame counting is only valid for NTSC.
func New(hours, minutes, seconds, frames int, rate FrameRate, dropFrame bool) (TimeCode, error) {
	rate = rate.normalized()
	if dropFrame && rate != NTSC {
		return Empty, fmt.Errorf("%w: drop-frame counting requires NTSC rate", ErrInvalid)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || frames < 0 || frames >= rate.FramesPerSecond() {
		return Empty, fmt.Errorf("%w: %02d:%02d:%02d:%02d at %d fps", ErrInvalid, hours, minutes, seconds, frames, rate)
	}

	if dropFrame && seconds == 0 && minutes%10 != 0 && frames < dropFramesPerMinute {
		return Empty, fmt.Errorf("%w: frame %d is skipped in drop-frame minute %d", ErrInvalid, frames, minutes)
	}

	return TimeCode{
		drop:   dropFrame,
		frames: labelToFrames(hours, minutes, seconds, frames, rate, dropFrame),
		rate:   rate,
		set:    true,
	}, nil
}

// MustNew is like New but panics on invalid fields. Intended for constants and tests.
func MustNew(hours, minutes, seconds, frames int, rate FrameRate, dropFrame bool) TimeCode {
	tc, err := New(hours, minutes, seconds, frames, rate, dropFrame)
	if err != nil {
		panic(err)
	}

	return tc
}

// FromFrames returns timecode positioned at frames counted from midnight.
// Values outside of a single day wrap around in both directions.
func FromFrames(frames int64, rate FrameRate, dropFrame bool) TimeCode {
	rate = rate.normalized()
	dropFrame = dropFrame && rate == NTSC

	return TimeCode{
		drop:   dropFrame,
		frames: wrap(frames, FramesPerDay(rate, dropFrame)),
		rate:   rate,
		set:    true,
	}
}

// FromDuration converts real time elapsed since midnight to timecode.
// Drop-frame timecodes follow 29.97 frames per second wall-clock.
func FromDuration(d time.Duration, rate FrameRate, dropFrame bool) TimeCode {
	rate = rate.normalized()
	dropFrame = dropFrame && rate == NTSC

	var frames int64
	if dropFrame {
		frames = int64(d) * 30000 / (1001 * nanosecondsPerSecond)
	} else {
		frames = int64(d) * int64(rate.FramesPerSecond()) / nanosecondsPerSecond
	}

	return FromFrames(frames, rate, dropFrame)
}

// FromTime returns timecode of a wall-clock time of day.
func FromTime(t time.Time, rate FrameRate, dropFrame bool) TimeCode {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return FromDuration(t.Sub(midnight), rate, dropFrame)
}

// FromBCD decodes packed BCD hhmmssff value as used by device protocols.
// 0xFFFFFFFF decodes to Empty.
func FromBCD(value uint32, rate FrameRate, dropFrame bool) (TimeCode, error) {
	if value == emptyBCD {
		return Empty, nil
	}

	digits := [8]int{}
	for idx := range digits {
		digit := int((value >> (28 - 4*idx)) & 0xF)
		if digit > 9 {
			return Empty, fmt.Errorf("%w: 0x%08X is not a BCD value", ErrInvalid, value)
		}

		digits[idx] = digit
	}

	return New(
		digits[0]*10+digits[1],
		digits[2]*10+digits[3],
		digits[4]*10+digits[5],
		digits[6]*10+digits[7],
		rate,
		dropFrame,
	)
}

// Parse reads timecode in "HH:MM:SS:FF" form. Semicolon before frames ("HH:MM:SS;FF") denotes drop-frame.
func Parse(text string, rate FrameRate) (TimeCode, error) {
	if len(text) != timecodeTextLength || text[2] != fieldSeparator || text[5] != fieldSeparator {
		return Empty, fmt.Errorf("%w: '%s'", ErrParse, text)
	}

	dropFrame := false
	switch text[8] {
	case fieldSeparator:
	case dropFrameSeparator:
		dropFrame = true
	default:
		return Empty, fmt.Errorf("%w: '%s'", ErrParse, text)
	}

	fields := [4]int{}
	for idx := range fields {
		tens, units := text[idx*3], text[idx*3+1]
		if !isDigit(tens) || !isDigit(units) {
			return Empty, fmt.Errorf("%w: '%s'", ErrParse, text)
		}

		fields[idx] = int(tens-'0')*10 + int(units-'0')
	}

	tc, err := New(fields[0], fields[1], fields[2], fields[3], rate, dropFrame)
	if err != nil {
		return Empty, fmt.Errorf("%w: %s", ErrParse, err)
	}

	return tc, nil
}

// FramesPerDay returns number of frames (labels) in a single day for the rate.
func FramesPerDay(rate FrameRate, dropFrame bool) int64 {
	rate = rate.normalized()
	if dropFrame && rate == NTSC {
		return dropFrameDayFrames
	}

	return int64(rate.FramesPerSecond()) * secondsPerDay
}

// Add returns timecode moved forward by other, wrapping around midnight.
// Adding to Empty treats it as midnight.
func (t TimeCode) Add(other TimeCode) TimeCode {
	if !t.set && !other.set {
		return Empty
	}

	base := t.orRateOf(other)
	return FromFrames(base.frames+other.framesIn(base.rate, base.drop), base.rate, base.drop)
}

// Sub returns timecode moved backward by other, wrapping around midnight.
func (t TimeCode) Sub(other TimeCode) TimeCode {
	if !t.set && !other.set {
		return Empty
	}

	base := t.orRateOf(other)
	return FromFrames(base.frames-other.framesIn(base.rate, base.drop), base.rate, base.drop)
}

// Compare returns -1, 0 or 1 when t is before, equal or after other within a day.
// Empty sorts before any set timecode.
func (t TimeCode) Compare(other TimeCode) int {
	switch {
	case !t.set && !other.set:
		return 0
	case !t.set:
		return -1
	case !other.set:
		return 1
	}

	otherFrames := other.framesIn(t.rate, t.drop)
	switch {
	case t.frames < otherFrames:
		return -1
	case t.frames > otherFrames:
		return 1
	default:
		return 0
	}
}

// Equal informs whether both timecodes point at the same position (or both are Empty).
func (t TimeCode) Equal(other TimeCode) bool {
	return t.Compare(other) == 0
}

// Before informs whether t is earlier within a day than other.
func (t TimeCode) Before(other TimeCode) bool {
	return t.Compare(other) < 0
}

// IsEmpty informs whether timecode is the unset sentinel.
func (t TimeCode) IsEmpty() bool {
	return !t.set
}

// TotalFrames returns number of frames since midnight.
func (t TimeCode) TotalFrames() int64 {
	return t.frames
}

func (t TimeCode) Rate() FrameRate {
	return t.rate.normalized()
}

func (t TimeCode) DropFrame() bool {
	return t.drop
}

func (t TimeCode) Hours() int {
	h, _, _, _ := t.label()
	return h
}

func (t TimeCode) Minutes() int {
	_, m, _, _ := t.label()
	return m
}

func (t TimeCode) Seconds() int {
	_, _, s, _ := t.label()
	return s
}

func (t TimeCode) Frames() int {
	_, _, _, f := t.label()
	return f
}

// Duration returns real time span represented by the timecode counted from midnight.
func (t TimeCode) Duration() time.Duration {
	if t.drop {
		return time.Duration(t.frames * 1001 * nanosecondsPerSecond / 30000)
	}

	return time.Duration(t.frames * nanosecondsPerSecond / int64(t.Rate().FramesPerSecond()))
}

// BCD returns packed BCD hhmmssff representation. Empty encodes as 0xFFFFFFFF.
func (t TimeCode) BCD() uint32 {
	if !t.set {
		return emptyBCD
	}

	var out uint32
	h, m, s, f := t.label()
	for _, field := range []int{h, m, s, f} {
		out = out<<8 | uint32(field/10)<<4 | uint32(field%10)
	}

	return out
}

func (t TimeCode) String() string {
	if !t.set {
		return emptyTimecodeString
	}

	separator := fieldSeparator
	if t.drop {
		separator = dropFrameSeparator
	}

	h, m, s, f := t.label()
	return fmt.Sprintf("%02d:%02d:%02d%c%02d", h, m, s, separator, f)
}

// MarshalJSON satisfies json.Marshaller.
func (t TimeCode) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}

	return json.Marshal(timeCodeJSON{
		Value:     t.String(),
		Rate:      t.Rate(),
		DropFrame: t.drop,
	})
}

// UnmarshalJSON satisfies json.Unmarshaler. Accepts null, a bare NTSC string or the object form.
func (t *TimeCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Empty
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		tc, err := Parse(text, NTSC)
		if err != nil {
			return err
		}

		*t = tc
		return nil
	}

	var tcJSON timeCodeJSON
	if err := json.Unmarshal(data, &tcJSON); err != nil {
		return fmt.Errorf("%w: %s", ErrParse, err)
	}

	tc, err := Parse(tcJSON.Value, tcJSON.Rate)
	if err != nil {
		return err
	}

	if tc.drop != tcJSON.DropFrame {
		return fmt.Errorf("%w: drop-frame flag does not match separator in '%s'", ErrParse, tcJSON.Value)
	}

	*t = tc
	return nil
}

func (t TimeCode) orRateOf(other TimeCode) TimeCode {
	if t.set {
		return t
	}

	return TimeCode{
		drop: other.drop,
		rate: other.Rate(),
		set:  true,
	}
}

// framesIn converts t to frames counted at another rate, going through real time when rates differ.
func (t TimeCode) framesIn(rate FrameRate, dropFrame bool) int64 {
	if !t.set {
		return 0
	}

	if t.Rate() == rate.normalized() && t.drop == dropFrame {
		return t.frames
	}

	return FromDuration(t.Duration(), rate, dropFrame).frames
}

func (t TimeCode) label() (int, int, int, int) {
	frames := t.frames
	if t.drop {
		tenMinutes := frames / framesPerDrop10Min
		remainder := frames % framesPerDrop10Min
		frames += 9 * dropFramesPerMinute * tenMinutes
		if remainder > dropFramesPerMinute {
			frames += dropFramesPerMinute * ((remainder - dropFramesPerMinute) / framesPerDropMinute)
		}
	}

	fps := int64(t.Rate().FramesPerSecond())
	return int(frames / (fps * 3600) % 24), int(frames / (fps * 60) % 60), int(frames / fps % 60), int(frames % fps)
}

func labelToFrames(hours, minutes, seconds, frames int, rate FrameRate, dropFrame bool) int64 {
	total := int64((hours*3600+minutes*60+seconds)*rate.FramesPerSecond() + frames)
	if dropFrame {
		totalMinutes := int64(60*hours + minutes)
		total -= dropFramesPerMinute * (totalMinutes - totalMinutes/10)
	}

	return total
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func wrap(frames int64, perDay int64) int64 {
	return ((frames % perDay) + perDay) % perDay
}
