package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractPayloadMass(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"kg with tilde and lb suffix", "~16,800 kg (37,000 lb)", 16800.0},
		{"plain kg", "1,800 kg", 1800.0},
		{"kg without separator", "500 kg", 500.0},
		{"kg glued to number", "4850kg", 4850.0},
		{"decimal kg", "3,136.5 kg", 3136.5},
		{"kg value wins over earlier number", "2 flights, 9,600 kg total", 9600.0},
		{"fallback first number", "37,000 lb", 37000.0},
		{"unknown sentinel", "Unknown", 0.0},
		{"lowercase unknown", "unknown", 0.0},
		{"nan sentinel", "nan", 0.0},
		{"dash sentinel", "—", 0.0},
		{"empty string", "", 0.0},
		{"whitespace only", "   ", 0.0},
		{"no number at all", "Classified payload", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPayloadMass(tt.input))
		})
	}
}

func TestParseLaunchDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			"full form with citation",
			"January 3, 2024 03:44[24]",
			time.Date(2024, 1, 3, 3, 44, 0, 0, time.UTC),
			true,
		},
		{
			"full form without citation",
			"January 3, 2024 03:44",
			time.Date(2024, 1, 3, 3, 44, 0, 0, time.UTC),
			true,
		},
		{
			"date only",
			"June 4, 2010",
			time.Date(2010, 6, 4, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"iso date",
			"2015-12-22",
			time.Date(2015, 12, 22, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"slash date",
			"12/22/2015",
			time.Date(2015, 12, 22, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"day-first fallback",
			"4 June 2010 18:45",
			time.Date(2010, 6, 4, 18, 45, 0, 0, time.UTC),
			true,
		},
		{
			"slash date outside candidate layouts",
			"2024/01/03",
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"iso date with time outside candidate layouts",
			"2015-12-22 18:45:00",
			time.Date(2015, 12, 22, 18, 45, 0, 0, time.UTC),
			true,
		},
		{"citation only", "[24]", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"garbage", "not a date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLaunchDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseLaunchDate_CitationEquivalence(t *testing.T) {
	// A trailing bracketed citation must not change the parse result.
	with, okWith := ParseLaunchDate("January 3, 2024 03:44[24]")
	without, okWithout := ParseLaunchDate("January 3, 2024 03:44")

	assert.Equal(t, okWithout, okWith)
	assert.Equal(t, without, with)
}

func TestLaunchYear(t *testing.T) {
	parsed, ok := ParseLaunchDate("January 3, 2024 03:44[24]")
	assert.Equal(t, "2024", LaunchYear(parsed, ok))

	unparsed, ok := ParseLaunchDate("no date here")
	assert.Equal(t, "", LaunchYear(unparsed, ok))
}

func TestFormatLaunchDate(t *testing.T) {
	parsed, ok := ParseLaunchDate("January 3, 2024 03:44")
	assert.Equal(t, "2024-01-03 03:44:00", FormatLaunchDate(parsed, ok))
	assert.Equal(t, "", FormatLaunchDate(time.Time{}, false))
}

func TestLaunchSiteCode(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		expected string
	}{
		{"multi word", "Cape Canaveral SLC-40", "CCS"},
		{"single word", "Starbase", "S"},
		{"extra whitespace", "  Kennedy   LC-39A ", "KL"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LaunchSiteCode(tt.site))
		})
	}
}

func TestSuccessFlag(t *testing.T) {
	assert.Equal(t, 1, SuccessFlag("Success"))
	assert.Equal(t, 1, SuccessFlag("  Success "))
	assert.Equal(t, 0, SuccessFlag("Failure"))
	assert.Equal(t, 0, SuccessFlag("Partial failure"))
	assert.Equal(t, 0, SuccessFlag(""))
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "Version, booster", NormalizeHeader("Version, booster[b]"))
	assert.Equal(t, "Payload", NormalizeHeader("Payload[c]"))
	assert.Equal(t, "Flight No.", NormalizeHeader("Flight No."))
	assert.Equal(t, "", NormalizeHeader("[1]"))
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, "42", CoerceInt(" 42 "))
	assert.Equal(t, "", CoerceInt("42[b]"))
	assert.Equal(t, "", CoerceInt("—"))
	assert.Equal(t, "", CoerceInt(""))
}
