package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Window is a half-open [start, end) booking interval. Two windows that only
// touch at a boundary do not overlap.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errors.New("start and end times are required")
	}

	if !start.Before(end) {
		return Window{}, errors.New("start time must be before end time")
	}

	return Window{
		start: start,
		end:   end,
	}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains reports whether t falls inside the window. The end instant is
// excluded.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

type Purpose struct {
	value string
}

func NewPurpose(value string) (Purpose, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Purpose{}, errors.New("purpose is required")
	}
	return Purpose{value: trimmed}, nil
}

func (p Purpose) String() string {
	return p.value
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
