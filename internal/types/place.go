package types

// UserPreferences are the four answers collected by the questionnaire.
type UserPreferences struct {
	PlaceType string `json:"placeType" example:"beach"`
	Budget    string `json:"budget" example:"30k"`
	Season    string `json:"season" example:"winter"`
	Source    string `json:"source" example:"delhi"`
}

// Missing returns the name of the first empty field, or "" when all are set.
func (p UserPreferences) Missing() string {
	switch {
	case p.PlaceType == "":
		return "placeType"
	case p.Budget == "":
		return "budget"
	case p.Season == "":
		return "season"
	case p.Source == "":
		return "source"
	}
	return ""
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a destination extracted from recommendation text with resolved coordinates.
type Place struct {
	Name  string  `json:"name" example:"Manali"`
	State string  `json:"state" example:"Himachal Pradesh"`
	Lat   float64 `json:"lat" example:"32.2432"`
	Lng   float64 `json:"lng" example:"77.1892"`
}

// CoordinateSource records which resolver produced a Place's coordinates.
type CoordinateSource string

const (
	SourceGeocoder   CoordinateSource = "geocoder"
	SourceGazetteer  CoordinateSource = "gazetteer"
	SourceUnresolved CoordinateSource = "unresolved"
)

// RecommendationResult is the payload of POST /recommendations.
type RecommendationResult struct {
	Recommendations string  `json:"recommendations"`
	Places          []Place `json:"places"`
}

// DefaultPlaces is returned whenever extraction yields nothing usable.
func DefaultPlaces() []Place {
	return []Place{
		{Name: "Manali", State: "Himachal Pradesh", Lat: 32.2432, Lng: 77.1892},
		{Name: "Shimla", State: "Himachal Pradesh", Lat: 31.1048, Lng: 77.1734},
		{Name: "Darjeeling", State: "West Bengal", Lat: 27.041, Lng: 88.2663},
		{Name: "Goa", State: "Goa", Lat: 15.2993, Lng: 73.9322},
		{Name: "Jaipur", State: "Rajasthan", Lat: 26.9124, Lng: 75.7873},
	}
}
