package report

import (
	"math"
	"sort"
	"strconv"

	"github.com/couchcryptid/launch-data-pipeline/internal/table"
)

// ColumnSummary holds descriptive statistics for one column. The numeric
// fields are only meaningful when Numeric is true.
type ColumnSummary struct {
	Column  string
	Count   int // non-empty values
	Unique  int
	Numeric bool
	Mean    float64
	Std     float64
	Min     float64
	Max     float64
}

// Summarize computes per-column descriptive statistics in header order.
// A column counts as numeric when every non-empty value parses as a number.
func Summarize(t *table.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(t.Header))
	for _, name := range t.Header {
		values := t.Column(name)
		s := ColumnSummary{Column: name}

		unique := make(map[string]bool)
		var nums []float64
		numeric := true
		for _, v := range values {
			if v == "" {
				continue
			}
			s.Count++
			unique[v] = true
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				nums = append(nums, f)
			} else {
				numeric = false
			}
		}
		s.Unique = len(unique)

		if numeric && len(nums) > 0 {
			s.Numeric = true
			s.Mean, s.Std = meanStd(nums)
			s.Min, s.Max = minMax(nums)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// meanStd returns the mean and sample standard deviation.
func meanStd(nums []float64) (mean, std float64) {
	for _, v := range nums {
		mean += v
	}
	mean /= float64(len(nums))

	if len(nums) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range nums {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(nums)-1))
}

func minMax(nums []float64) (lo, hi float64) {
	lo, hi = nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// valueCount is one label with its occurrence count.
type valueCount struct {
	Value string
	Count int
}

// countValues tallies non-empty values, most frequent first, ties by label.
func countValues(values []string) []valueCount {
	tally := make(map[string]int)
	for _, v := range values {
		if v != "" {
			tally[v]++
		}
	}
	out := make([]valueCount, 0, len(tally))
	for v, n := range tally {
		out = append(out, valueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// countSorted tallies non-empty values sorted by label ascending, for report
// tables where a stable key order reads better than frequency order.
func countSorted(values []string) []valueCount {
	out := countValues(values)
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
