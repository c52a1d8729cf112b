package domain

import (
	"math"
	"sort"
	"strconv"
)

// Ordered (source, destination) city pair.
type Route struct {
	Source      string
	Destination string
}

func (r Route) String() string { return r.Source + " ➝ " + r.Destination }

// Minimum plausible flight time for a known route.
type RouteTime struct {
	Route    Route
	MinHours float64
}

// Immutable lookup of minimum flight hours per route.
type MinTravelTimeTable struct {
	hours map[Route]float64
	order []Route
}

// NewMinTravelTimeTable builds a table from entries. A repeated route keeps
// its first position and its last value.
func NewMinTravelTimeTable(entries []RouteTime) *MinTravelTimeTable {
	t := &MinTravelTimeTable{hours: make(map[Route]float64, len(entries))}
	for _, e := range entries {
		if _, ok := t.hours[e.Route]; !ok {
			t.order = append(t.order, e.Route)
		}
		t.hours[e.Route] = e.MinHours
	}
	return t
}

func (t *MinTravelTimeTable) Lookup(r Route) (float64, bool) {
	h, ok := t.hours[r]
	return h, ok
}

func (t *MinTravelTimeTable) Len() int { return len(t.order) }

// Entries in insertion order.
func (t *MinTravelTimeTable) Entries() []RouteTime {
	out := make([]RouteTime, 0, len(t.order))
	for _, r := range t.order {
		out = append(out, RouteTime{Route: r, MinHours: t.hours[r]})
	}
	return out
}

// Entries sorted by source then destination.
func (t *MinTravelTimeTable) SortedEntries() []RouteTime {
	out := t.Entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Route.Source != out[j].Route.Source {
			return out[i].Route.Source < out[j].Route.Source
		}
		return out[i].Route.Destination < out[j].Route.Destination
	})
	return out
}

// Render hours the way users see them: always at least one decimal place.
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func rt(src, dst string, hours float64) RouteTime {
	return RouteTime{Route: Route{Source: src, Destination: dst}, MinHours: hours}
}

// DefaultMinTravelTimes is the built-in route table used for timing checks.
var DefaultMinTravelTimes = NewMinTravelTimeTable([]RouteTime{
	rt("Mumbai", "Kolkata", 2.5),
	rt("Delhi", "Bangalore", 2.0),
	rt("Chennai", "Hyderabad", 1.5),
	rt("Kolkata", "Delhi", 2.5),
	rt("Mumbai", "Delhi", 2.0),
	rt("Bangalore", "Kolkata", 3.0),
	rt("Chennai", "Delhi", 2.5),
	rt("Hyderabad", "Kolkata", 2.0),
	rt("Bangalore", "Bangalore", 0.0),
	rt("Bangalore", "New Delhi", 2.5),
	rt("Kolkata", "Kolkata", 0.0),
	rt("Kolkata", "New Delhi", 2.5),
	rt("Delhi", "New Delhi", 0.5),
	rt("Delhi", "Delhi", 0.0),
	rt("Chennai", "New Delhi", 3.0),
	rt("Chennai", "Bangalore", 1.0),
	rt("Chennai", "Cochin", 1.5),
	rt("Chennai", "Kolkata", 2.5),
	rt("Mumbai", "New Delhi", 2.5),
	rt("Mumbai", "Bangalore", 2.0),
	rt("Mumbai", "Cochin", 1.5),
	rt("Mumbai", "Hyderabad", 1.5),
})
