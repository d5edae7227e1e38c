package domain

import "time"

// Launch is a single launch record from the SpaceX v4 API. Rocket, Launchpad,
// and Payloads hold opaque identifiers resolved against the other resource
// collections at join time.
type Launch struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	FlightNumber int       `json:"flight_number"`
	DateUTC      time.Time `json:"date_utc"`
	Success      *bool     `json:"success"` // nil for upcoming launches
	Upcoming     bool      `json:"upcoming"`
	Rocket       string    `json:"rocket"`
	Launchpad    string    `json:"launchpad"`
	Payloads     []string  `json:"payloads"`
}

// Rocket maps a rocket identifier to its display name.
type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Payload carries cargo metadata. Mass may be reported in kilograms, pounds,
// both, or neither depending on the mission.
type Payload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MassKg    *float64 `json:"mass_kg"`
	MassLbs   *float64 `json:"mass_lbs"`
	Orbit     string   `json:"orbit"`
	Customers []string `json:"customers"`
}

// Launchpad is a physical launch site as described by the API.
type Launchpad struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	FullName  string  `json:"full_name"`
	Locality  string  `json:"locality"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// APIData bundles the four resource collections fetched from the API.
// It is built once per process and passed explicitly to the join; nothing
// in this package keeps package-level lookup state.
type APIData struct {
	Launches   []Launch
	Rockets    []Rocket
	Payloads   []Payload
	Launchpads []Launchpad
}

// Canonical column names produced by the cleaning step. Downstream consumers
// must treat every column as optionally populated: renaming skips source
// columns that are absent and synthesizes the canonical column empty.
const (
	ColFlightNumber   = "flight_number"
	ColDate           = "date"
	ColBoosterVersion = "booster_version"
	ColLaunchSite     = "launch_site"
	ColPayload        = "payload"
	ColPayloadMassKg  = "payload_mass_kg"
	ColOrbit          = "orbit"
	ColCustomer       = "customer"
	ColLaunchOutcome  = "launch_outcome"
	ColBoosterLanding = "booster_landing"
	ColLaunchYear     = "launch_year"
	ColLaunchSiteCode = "launch_site_code"
	ColSuccessFlag    = "success_flag"
)

// SourcePayloadMass is the scraped column the payload_mass_kg feature is
// derived from. It keeps its source name in the cleaned output.
const SourcePayloadMass = "Payload mass"

// ColumnRenames maps the scraped table's source headers to canonical names.
// Keys are citation-free: apply NormalizeHeader to a scraped header before
// looking it up. Only columns actually present in the input are renamed.
var ColumnRenames = map[string]string{
	"Flight No.":          ColFlightNumber,
	"Date and time (UTC)": ColDate,
	"Version, booster":    ColBoosterVersion,
	"Launch site":         ColLaunchSite,
	"Payload":             ColPayload,
	"Orbit":               ColOrbit,
	"Customer":            ColCustomer,
	"Launch outcome":      ColLaunchOutcome,
	"Booster landing":     ColBoosterLanding,
}

// CanonicalColumns is the full set of columns every cleaned table carries.
var CanonicalColumns = []string{
	ColFlightNumber,
	ColDate,
	ColBoosterVersion,
	ColLaunchSite,
	ColPayload,
	ColPayloadMassKg,
	ColOrbit,
	ColCustomer,
	ColLaunchOutcome,
	ColBoosterLanding,
	ColLaunchYear,
	ColLaunchSiteCode,
	ColSuccessFlag,
}
