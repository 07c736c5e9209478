package model

// Coordinates is a latitude/longitude pair. The model performs no range
// validation; request-level validation lives in util/validator.go.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one stop on an event route. Order always equals the stop's
// index in the owning route's Locations slice and is recomputed on every
// structural mutation rather than set by callers.
type Location struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Coordinates  Coordinates `json:"coordinates"`
	Order        int         `json:"order"`
	StayDuration int         `json:"stay_duration"` // minutes
	Description  string      `json:"description,omitempty"`

	// Provenance fields, set only when the stop was derived from a known
	// venue. Absent for custom locations.
	BarName    string `json:"bar_name,omitempty"`
	BarAddress string `json:"bar_address,omitempty"`
	BarPhone   string `json:"bar_phone,omitempty"`
	BarEmail   string `json:"bar_email,omitempty"`
}

// Route is the ordered multi-stop itinerary of one event. TotalDuration is
// always the sum of all stops' StayDuration. A route with zero stops is
// represented as a nil *Route, never as an empty active route.
type Route struct {
	Locations     []Location `json:"locations"`
	TotalDuration int        `json:"total_duration"` // minutes
	IsActive      bool       `json:"is_active"`
}

// LocationPatch is a partial update for one stop. Nil fields are left
// untouched.
type LocationPatch struct {
	Name         *string      `json:"name,omitempty"`
	Address      *string      `json:"address,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	StayDuration *int         `json:"stay_duration,omitempty"`
	Description  *string      `json:"description,omitempty"`
}
