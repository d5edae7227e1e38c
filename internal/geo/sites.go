// Package geo renders the launch site map: per-pad launch statistics merged
// with curated site facts, written as a self-contained Leaflet HTML page.
package geo

// Proximity locates the nearest feature of one kind (railway, highway,
// coastline) relative to a launch site. Exists is false for sites that have
// no such feature at all, e.g. an island with no railway.
type Proximity struct {
	Exists     bool    `json:"exists"`
	DistanceKm float64 `json:"distance_km"`
	Direction  string  `json:"direction"`
	Name       string  `json:"name"`
}

// SiteFacts is curated ground truth for a launch site: coordinates plus the
// proximity facts the API does not carry.
type SiteFacts struct {
	Key       string
	FullName  string
	Locality  string
	Region    string
	Latitude  float64
	Longitude float64
	Railway   Proximity
	Highway   Proximity
	Coastline Proximity
}

// KnownSites lists launch sites with verified coordinates and proximity
// facts. Sites found in live data are enriched from this table; entries the
// live data lacks are added to the map with zero launch stats.
var KnownSites = []SiteFacts{
	{
		Key:       "CCSFS SLC 40",
		FullName:  "Cape Canaveral Space Force Station SLC-40",
		Locality:  "Cape Canaveral",
		Region:    "Florida, USA",
		Latitude:  28.5619,
		Longitude: -80.5774,
		Railway:   Proximity{Exists: true, DistanceKm: 8.2, Direction: "NW", Name: "Florida East Coast Railway"},
		Highway:   Proximity{Exists: true, DistanceKm: 3.1, Direction: "E", Name: "US-1"},
		Coastline: Proximity{Exists: true, DistanceKm: 0.8, Direction: "E", Name: "Atlantic Ocean"},
	},
	{
		Key:       "KSC LC 39A",
		FullName:  "Kennedy Space Center Launch Complex 39A",
		Locality:  "Merritt Island",
		Region:    "Florida, USA",
		Latitude:  28.6083,
		Longitude: -80.6041,
		Railway:   Proximity{Exists: true, DistanceKm: 12.5, Direction: "NW", Name: "Florida East Coast Railway"},
		Highway:   Proximity{Exists: true, DistanceKm: 5.2, Direction: "E", Name: "FL-405"},
		Coastline: Proximity{Exists: true, DistanceKm: 1.2, Direction: "E", Name: "Atlantic Ocean"},
	},
	{
		Key:       "VAFB SLC 4E",
		FullName:  "Vandenberg Space Force Base SLC-4E",
		Locality:  "Lompoc",
		Region:    "California, USA",
		Latitude:  34.6321,
		Longitude: -120.6106,
		Railway:   Proximity{Exists: true, DistanceKm: 15.8, Direction: "NE", Name: "Union Pacific Railroad"},
		Highway:   Proximity{Exists: true, DistanceKm: 8.7, Direction: "E", Name: "US-101"},
		Coastline: Proximity{Exists: true, DistanceKm: 2.1, Direction: "W", Name: "Pacific Ocean"},
	},
	{
		Key:       "Boca Chica",
		FullName:  "SpaceX Starbase Launch Site",
		Locality:  "Boca Chica",
		Region:    "Texas, USA",
		Latitude:  25.9968,
		Longitude: -97.1558,
		Railway:   Proximity{Exists: true, DistanceKm: 22.3, Direction: "NW", Name: "Union Pacific Railroad"},
		Highway:   Proximity{Exists: true, DistanceKm: 4.8, Direction: "N", Name: "TX-4"},
		Coastline: Proximity{Exists: true, DistanceKm: 0.5, Direction: "E", Name: "Gulf of Mexico"},
	},
	{
		Key:       "Omelek Island",
		FullName:  "Omelek Island Launch Complex",
		Locality:  "Kwajalein Atoll",
		Region:    "Marshall Islands",
		Latitude:  9.0478,
		Longitude: 167.7431,
		Railway:   Proximity{Name: "No Railway"},
		Highway:   Proximity{Name: "No Highway"},
		Coastline: Proximity{Exists: true, DistanceKm: 0.1, Direction: "All", Name: "Pacific Ocean"},
	},
	{
		Key:       "Vandenberg SLC-3W",
		FullName:  "Vandenberg Space Force Base SLC-3W",
		Locality:  "Lompoc",
		Region:    "California, USA",
		Latitude:  34.6341,
		Longitude: -120.6106,
		Railway:   Proximity{Exists: true, DistanceKm: 15.6, Direction: "NE", Name: "Union Pacific Railroad"},
		Highway:   Proximity{Exists: true, DistanceKm: 8.5, Direction: "E", Name: "US-101"},
		Coastline: Proximity{Exists: true, DistanceKm: 2.0, Direction: "W", Name: "Pacific Ocean"},
	},
	{
		Key:       "Cape Canaveral SLC-17",
		FullName:  "Cape Canaveral Space Force Station SLC-17",
		Locality:  "Cape Canaveral",
		Region:    "Florida, USA",
		Latitude:  28.4469,
		Longitude: -80.5653,
		Railway:   Proximity{Exists: true, DistanceKm: 7.8, Direction: "NW", Name: "Florida East Coast Railway"},
		Highway:   Proximity{Exists: true, DistanceKm: 2.9, Direction: "E", Name: "US-1"},
		Coastline: Proximity{Exists: true, DistanceKm: 0.6, Direction: "E", Name: "Atlantic Ocean"},
	},
}

// coordTolerance is the lat/lon delta within which an API pad and a curated
// site are considered the same physical location.
const coordTolerance = 0.01

// matchKnownSite finds the curated entry for a pad by name or coordinates.
func matchKnownSite(name, fullName string, lat, lon float64) (SiteFacts, bool) {
	for _, site := range KnownSites {
		if name == site.Key || fullName == site.FullName {
			return site, true
		}
		if abs(lat-site.Latitude) < coordTolerance && abs(lon-site.Longitude) < coordTolerance {
			return site, true
		}
	}
	return SiteFacts{}, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
