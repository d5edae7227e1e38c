// Package domain models Falcon 9 launch data from its two sources: the
// SpaceX v4 REST API and the Wikipedia launch list table.
//
// # Data Sources
//
// The API (https://api.spacexdata.com/v4) exposes four resource collections
// keyed by opaque identifiers: launches, rockets, payloads, and launchpads.
// [BuildDataset] joins them in memory; lookup maps are built per call and
// never stored at package level, so transforms stay testable with synthetic
// inputs.
//
// The wiki table is scraped as loose text and cleaned column by column.
// Because its schema drifts between page revisions, every canonical column is
// optional: renaming skips absent source columns and downstream consumers get
// the column synthesized empty.
//
// # Field Conventions
//
// Payload mass (scraped "Payload mass" column):
//
//	Free text such as "~16,800 kg (37,000 lb)" or "Unknown".
//	A number directly followed by "kg" wins; otherwise the first number-like
//	token is assumed to be kilograms; sentinels ("Unknown", "N/A", dashes)
//	and numberless text yield 0. Thousands separators are stripped.
//	No unit-ambiguity resolution is attempted for bare numbers.
//
// Dates (scraped "Date and time (UTC)" column):
//
//	May carry a trailing bracketed citation marker, e.g.
//	"January 3, 2024 03:44[24]". Everything from the first "[" is discarded
//	before parsing against an ordered list of layouts. Unparsable input
//	yields an explicit no-date value, never an error; launch_year is derived
//	only from successfully parsed dates.
//
// API payload mass:
//
//	Payloads report mass_kg, mass_lbs, both, or neither. Kilograms are
//	preferred; pounds are converted with the fixed factor [LbsToKg].
//	A launch whose referenced payloads resolve to no mass is flagged rather
//	than defaulted.
//
// Outcome labels:
//
//	The API's nullable success boolean maps to "Success"/"Failure"; upcoming
//	launches (success == null) count as failures for statistics, matching
//	the source dashboards.
package domain
