package domain

import (
	"sort"
	"time"
)

// LbsToKg converts pounds to kilograms when a payload reports only mass_lbs.
const LbsToKg = 0.453592

// OutcomeSuccess and OutcomeFailure are the display labels derived from the
// API's boolean success field.
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// JoinedLaunch is one launch after resolving rocket, payload, and launchpad
// identifiers against their lookup collections.
type JoinedLaunch struct {
	ID             string
	Name           string
	FlightNumber   int
	DateUTC        time.Time
	Success        bool
	Outcome        string
	RocketName     string
	LaunchpadID    string
	LaunchSite     string // launchpad display name, "Unknown" for dangling ids
	PayloadMassKg  float64
	HasPayloadMass bool
}

// Dataset is the in-memory join of the four API resource collections,
// built once per process lifetime.
type Dataset struct {
	Launches   []JoinedLaunch
	Launchpads map[string]Launchpad
}

// JoinOptions control which launches survive the join.
type JoinOptions struct {
	// Rockets restricts the dataset to launches of the named rockets.
	// Empty means all rockets.
	Rockets []string
	// MaxLaunches caps the dataset after sorting by flight number descending.
	// Zero means no cap.
	MaxLaunches int
	// RequirePayloadMass drops launches whose payload mass could not be
	// resolved from any referenced payload.
	RequirePayloadMass bool
}

// BuildDataset joins launches against rockets, payloads, and launchpads.
// Dangling identifiers degrade rather than fail: an unknown rocket excludes
// the launch only when a rocket filter is set, an unknown launchpad maps to
// the "Unknown" site, and unresolvable payload mass is flagged, not invented.
func BuildDataset(data APIData, opts JoinOptions) *Dataset {
	rocketNames := make(map[string]string, len(data.Rockets))
	for _, r := range data.Rockets {
		rocketNames[r.ID] = r.Name
	}
	payloadsByID := make(map[string]Payload, len(data.Payloads))
	for _, p := range data.Payloads {
		payloadsByID[p.ID] = p
	}
	padsByID := make(map[string]Launchpad, len(data.Launchpads))
	for _, lp := range data.Launchpads {
		padsByID[lp.ID] = lp
	}

	wantRocket := make(map[string]bool, len(opts.Rockets))
	for _, name := range opts.Rockets {
		wantRocket[name] = true
	}

	joined := make([]JoinedLaunch, 0, len(data.Launches))
	for _, l := range data.Launches {
		rocketName := rocketNames[l.Rocket]
		if len(wantRocket) > 0 && !wantRocket[rocketName] {
			continue
		}

		mass, hasMass := resolvePayloadMass(l.Payloads, payloadsByID)
		if opts.RequirePayloadMass && !hasMass {
			continue
		}

		success := l.Success != nil && *l.Success
		outcome := OutcomeFailure
		if success {
			outcome = OutcomeSuccess
		}

		site := "Unknown"
		if pad, ok := padsByID[l.Launchpad]; ok {
			site = launchpadDisplayName(pad)
		}

		joined = append(joined, JoinedLaunch{
			ID:             l.ID,
			Name:           l.Name,
			FlightNumber:   l.FlightNumber,
			DateUTC:        l.DateUTC,
			Success:        success,
			Outcome:        outcome,
			RocketName:     rocketName,
			LaunchpadID:    l.Launchpad,
			LaunchSite:     site,
			PayloadMassKg:  mass,
			HasPayloadMass: hasMass,
		})
	}

	sort.Slice(joined, func(i, j int) bool {
		return joined[i].FlightNumber > joined[j].FlightNumber
	})
	if opts.MaxLaunches > 0 && len(joined) > opts.MaxLaunches {
		joined = joined[:opts.MaxLaunches]
	}

	return &Dataset{Launches: joined, Launchpads: padsByID}
}

// resolvePayloadMass resolves the mass of a launch's first referenced payload,
// converting pounds when kilograms are absent. Returns false when no
// referenced payload resolves to a mass.
func resolvePayloadMass(ids []string, payloads map[string]Payload) (float64, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	p, ok := payloads[ids[0]]
	if !ok {
		return 0, false
	}
	if p.MassKg != nil {
		return *p.MassKg, true
	}
	if p.MassLbs != nil {
		return *p.MassLbs * LbsToKg, true
	}
	return 0, false
}

func launchpadDisplayName(pad Launchpad) string {
	if pad.Locality != "" {
		return pad.Locality
	}
	if pad.Name != "" {
		return pad.Name
	}
	return pad.FullName
}

// SiteStats aggregates outcomes for one launch site.
type SiteStats struct {
	Site         string
	Total        int
	Successes    int
	Failures     int
	SuccessRatio float64 // percent
}

// StatsBySite groups the dataset's launches by site name, sorted by site.
func (d *Dataset) StatsBySite() []SiteStats {
	bySite := make(map[string]*SiteStats)
	for _, l := range d.Launches {
		s, ok := bySite[l.LaunchSite]
		if !ok {
			s = &SiteStats{Site: l.LaunchSite}
			bySite[l.LaunchSite] = s
		}
		s.Total++
		if l.Success {
			s.Successes++
		} else {
			s.Failures++
		}
	}

	out := make([]SiteStats, 0, len(bySite))
	for _, s := range bySite {
		s.SuccessRatio = float64(s.Successes) / float64(s.Total) * 100
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Site < out[j].Site })
	return out
}

// BestSite returns the site with the highest success ratio, false when the
// stats are empty.
func BestSite(stats []SiteStats) (SiteStats, bool) {
	if len(stats) == 0 {
		return SiteStats{}, false
	}
	best := stats[0]
	for _, s := range stats[1:] {
		if s.SuccessRatio > best.SuccessRatio {
			best = s
		}
	}
	return best, true
}

// PadStats aggregates outcomes for one launchpad identifier.
type PadStats struct {
	Pad       Launchpad
	Total     int
	Successes int
	// SuccessRate in percent, 0 for pads without launches.
	SuccessRate float64
}

// StatsByLaunchpad groups launches by launchpad id, keeping pad metadata for
// rendering. Pads without any launches in the dataset are omitted.
func (d *Dataset) StatsByLaunchpad() map[string]*PadStats {
	byPad := make(map[string]*PadStats)
	for _, l := range d.Launches {
		pad, ok := d.Launchpads[l.LaunchpadID]
		if !ok {
			continue
		}
		s, seen := byPad[l.LaunchpadID]
		if !seen {
			s = &PadStats{Pad: pad}
			byPad[l.LaunchpadID] = s
		}
		s.Total++
		if l.Success {
			s.Successes++
		}
	}
	for _, s := range byPad {
		if s.Total > 0 {
			s.SuccessRate = float64(s.Successes) / float64(s.Total) * 100
		}
	}
	return byPad
}

// FilterByMass returns the launches whose payload mass lies in [lo, hi].
func (d *Dataset) FilterByMass(lo, hi float64) *Dataset {
	filtered := make([]JoinedLaunch, 0, len(d.Launches))
	for _, l := range d.Launches {
		if l.PayloadMassKg >= lo && l.PayloadMassKg <= hi {
			filtered = append(filtered, l)
		}
	}
	return &Dataset{Launches: filtered, Launchpads: d.Launchpads}
}

// MassRange reports the minimum and maximum payload mass in the dataset.
func (d *Dataset) MassRange() (lo, hi float64) {
	if len(d.Launches) == 0 {
		return 0, 0
	}
	lo, hi = d.Launches[0].PayloadMassKg, d.Launches[0].PayloadMassKg
	for _, l := range d.Launches[1:] {
		if l.PayloadMassKg < lo {
			lo = l.PayloadMassKg
		}
		if l.PayloadMassKg > hi {
			hi = l.PayloadMassKg
		}
	}
	return lo, hi
}

// SuccessRate is the percentage of successful launches in the dataset.
func (d *Dataset) SuccessRate() float64 {
	if len(d.Launches) == 0 {
		return 0
	}
	var successes int
	for _, l := range d.Launches {
		if l.Success {
			successes++
		}
	}
	return float64(successes) / float64(len(d.Launches)) * 100
}

// Sites returns the distinct launch site names in the dataset.
func (d *Dataset) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, l := range d.Launches {
		if !seen[l.LaunchSite] {
			seen[l.LaunchSite] = true
			sites = append(sites, l.LaunchSite)
		}
	}
	sort.Strings(sites)
	return sites
}
