package travelMap

import (
	"fmt"
	"math"
	"strings"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

const (
	ModeInteractive = "interactive"
	ModeList        = "list"

	ViewportFitBounds = "fit_bounds"
	ViewportCenter    = "center"

	defaultZoom     = 5
	singlePlaceZoom = 8
	boundsPadding   = 50

	tileURL      = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	attribution  = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	emptyMessage = "No destinations found. Please try a different query."
	unknownState = "Unknown"
)

var (
	// Center of India.
	defaultCenter = types.Coordinates{Lat: 20.5937, Lng: 78.9629}

	palette = []string{"#4169E1", "#00BFFF", "#8A2BE2", "#4B0082", "#FF4500", "#32CD32"}
)

type Marker struct {
	Name  string  `json:"name"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Color string  `json:"color"`
}

// StateGroup is the set of markers sharing a state and therefore a colour.
type StateGroup struct {
	State   string   `json:"state"`
	Color   string   `json:"color"`
	Markers []Marker `json:"markers"`
}

type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

type Viewport struct {
	Kind    string            `json:"kind"`
	Center  types.Coordinates `json:"center"`
	Zoom    int               `json:"zoom"`
	Bounds  *Bounds           `json:"bounds,omitempty"`
	Padding int               `json:"padding,omitempty"`
}

// MapView is everything a client needs to draw the destination map or its list fallback.
type MapView struct {
	Mode         string       `json:"mode"`
	Title        string       `json:"title"`
	Groups       []StateGroup `json:"groups"`
	Markers      []Marker     `json:"markers"`
	Viewport     Viewport     `json:"viewport"`
	TileURL      string       `json:"tile_url"`
	Attribution  string       `json:"attribution"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

// BuildView groups places by state in first-seen order, assigns palette
// colours cyclically and picks the viewport. A non-interactive request or an
// empty list produces list mode.
func BuildView(places []types.Place, interactive bool) MapView {
	view := MapView{
		Mode:        ModeInteractive,
		Title:       fmt.Sprintf("Recommended Destinations (%d)", len(places)),
		Groups:      []StateGroup{},
		Markers:     []Marker{},
		TileURL:     tileURL,
		Attribution: attribution,
		Viewport:    Viewport{Kind: ViewportCenter, Center: defaultCenter, Zoom: defaultZoom},
	}

	index := make(map[string]int)
	for _, p := range places {
		state := strings.TrimSpace(p.State)
		if state == "" {
			state = unknownState
		}
		i, ok := index[state]
		if !ok {
			i = len(view.Groups)
			index[state] = i
			view.Groups = append(view.Groups, StateGroup{State: state, Color: palette[i%len(palette)]})
		}
		m := Marker{Name: p.Name, State: state, Lat: p.Lat, Lng: p.Lng, Color: view.Groups[i].Color}
		view.Groups[i].Markers = append(view.Groups[i].Markers, m)
		view.Markers = append(view.Markers, m)
	}

	switch len(places) {
	case 0:
		view.Mode = ModeList
		view.EmptyMessage = emptyMessage
	case 1:
		view.Viewport = Viewport{
			Kind:   ViewportCenter,
			Center: types.Coordinates{Lat: places[0].Lat, Lng: places[0].Lng},
			Zoom:   singlePlaceZoom,
		}
	default:
		b := boundsOf(places)
		view.Viewport = Viewport{
			Kind:    ViewportFitBounds,
			Center:  types.Coordinates{Lat: (b.South + b.North) / 2, Lng: (b.West + b.East) / 2},
			Zoom:    defaultZoom,
			Bounds:  &b,
			Padding: boundsPadding,
		}
	}

	if !interactive {
		view.Mode = ModeList
	}
	return view
}

func boundsOf(places []types.Place) Bounds {
	b := Bounds{South: math.Inf(1), West: math.Inf(1), North: math.Inf(-1), East: math.Inf(-1)}
	for _, p := range places {
		b.South = math.Min(b.South, p.Lat)
		b.North = math.Max(b.North, p.Lat)
		b.West = math.Min(b.West, p.Lng)
		b.East = math.Max(b.East, p.Lng)
	}
	return b
}
