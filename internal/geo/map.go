package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
)

//go:embed map.html.tmpl
var mapTemplate string

// Marker color and overlay band names, keyed by success rate.
const (
	BandHigh     = "high"     // 80%+
	BandMedium   = "medium"   // 60-79%
	BandLow      = "low"      // below 60, at least one launch
	BandInactive = "inactive" // no launches
)

// defaultCenter is Cape Canaveral, used when no site has coordinates.
var defaultCenter = [2]float64{28.5729, -80.6490}

// SiteMarker is one rendered map marker: pad stats merged with curated or
// generated proximity facts.
type SiteMarker struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Locality    string    `json:"locality"`
	Region      string    `json:"region"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lon"`
	Total       int       `json:"total"`
	Successes   int       `json:"successes"`
	SuccessRate float64   `json:"success_rate"`
	Color       string    `json:"color"`
	Band        string    `json:"band"`
	Railway     Proximity `json:"railway"`
	Highway     Proximity `json:"highway"`
	Coastline   Proximity `json:"coastline"`
}

// Renderer builds site markers from a joined dataset and writes the map HTML.
// Placeholder proximity values for sites outside the curated table come from
// a seeded generator, so a fixed seed gives reproducible output.
type Renderer struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewRenderer creates a Renderer. Seed 0 means nondeterministic placeholders.
func NewRenderer(logger *slog.Logger, seed int64) *Renderer {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Renderer{logger: logger, rng: rand.New(rand.NewSource(seed))}
}

// Build merges per-pad stats with the curated site table. Pads without
// coordinates are skipped; curated sites absent from the dataset are added
// with zero stats. Markers come back sorted by name.
func (r *Renderer) Build(d *domain.Dataset) []SiteMarker {
	markers := make([]SiteMarker, 0, len(KnownSites))

	for _, s := range d.StatsByLaunchpad() {
		if s.Pad.Latitude == 0 || s.Pad.Longitude == 0 {
			r.logger.Warn("skipping pad without coordinates", "pad", s.Pad.Name)
			continue
		}
		m := SiteMarker{
			Name:        s.Pad.Name,
			FullName:    s.Pad.FullName,
			Locality:    s.Pad.Locality,
			Region:      s.Pad.Region,
			Latitude:    s.Pad.Latitude,
			Longitude:   s.Pad.Longitude,
			Total:       s.Total,
			Successes:   s.Successes,
			SuccessRate: s.SuccessRate,
		}
		if facts, ok := matchKnownSite(m.Name, m.FullName, m.Latitude, m.Longitude); ok {
			m.Railway, m.Highway, m.Coastline = facts.Railway, facts.Highway, facts.Coastline
		} else {
			m.Railway = r.placeholder(5, 50, "Nearest Railway")
			m.Highway = r.placeholder(2, 40, "Nearest Highway")
			m.Coastline = r.placeholder(1, 30, "Nearest Coastline")
		}
		m.Color, m.Band = MarkerColor(m.Total, m.SuccessRate)
		markers = append(markers, m)
	}

	for _, site := range KnownSites {
		if markerExists(markers, site) {
			continue
		}
		color, band := MarkerColor(0, 0)
		markers = append(markers, SiteMarker{
			Name:      site.Key,
			FullName:  site.FullName,
			Locality:  site.Locality,
			Region:    site.Region,
			Latitude:  site.Latitude,
			Longitude: site.Longitude,
			Railway:   site.Railway,
			Highway:   site.Highway,
			Coastline: site.Coastline,
			Color:     color,
			Band:      band,
		})
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i].Name < markers[j].Name })
	r.logger.Info("site markers built", "count", len(markers))
	return markers
}

func markerExists(markers []SiteMarker, site SiteFacts) bool {
	for _, m := range markers {
		if m.Name == site.Key || m.FullName == site.FullName {
			return true
		}
		if abs(m.Latitude-site.Latitude) < coordTolerance && abs(m.Longitude-site.Longitude) < coordTolerance {
			return true
		}
	}
	return false
}

var directions = []string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}

func (r *Renderer) placeholder(lo, hi float64, name string) Proximity {
	return Proximity{
		Exists:     true,
		DistanceKm: math.Round((lo+r.rng.Float64()*(hi-lo))*10) / 10,
		Direction:  directions[r.rng.Intn(len(directions))],
		Name:       name,
	}
}

// MarkerColor maps launch stats to a marker color and overlay band. Banding
// follows the success rate alone: a visited site that never succeeded is
// treated like an unvisited one.
func MarkerColor(total int, successRate float64) (color, band string) {
	switch {
	case total == 0:
		return "gray", BandInactive
	case successRate >= 80:
		return "green", BandHigh
	case successRate >= 60:
		return "orange", BandMedium
	case successRate > 0:
		return "red", BandLow
	default:
		return "gray", BandInactive
	}
}

// Center returns the mean coordinate of the markers, or the Cape Canaveral
// default when none carry coordinates.
func Center(markers []SiteMarker) (lat, lon float64) {
	n := 0
	for _, m := range markers {
		if m.Latitude == 0 && m.Longitude == 0 {
			continue
		}
		lat += m.Latitude
		lon += m.Longitude
		n++
	}
	if n == 0 {
		return defaultCenter[0], defaultCenter[1]
	}
	return lat / float64(n), lon / float64(n)
}

type mapPage struct {
	CenterLat float64
	CenterLon float64
	Markers   template.JS
	Count     int
}

// Render writes the self-contained Leaflet map to path.
func (r *Renderer) Render(markers []SiteMarker, path string) error {
	tmpl, err := template.New("map").Parse(mapTemplate)
	if err != nil {
		return fmt.Errorf("parse map template: %w", err)
	}

	payload, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}
	lat, lon := Center(markers)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	page := mapPage{CenterLat: lat, CenterLon: lon, Markers: template.JS(payload), Count: len(markers)}
	if err := tmpl.Execute(f, page); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	r.logger.Info("launch site map written", "path", path, "markers", len(markers))
	return f.Close()
}
