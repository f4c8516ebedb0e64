// Package agg holds the pure reducers of the dashboard: global KPI sums
// with derived rates, dimension-grouped summaries, funnel snapshots, the
// weekly roll-up and the distinct filter options. Everything here is
// stateless and deterministic; callers fetch rows first and reduce locally.
package agg

import (
	"math"
	"sort"
)

// Unspecified labels the bucket for rows whose grouping key is blank, on
// the dimensions that bucket instead of dropping.
const Unspecified = "unspecified"

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// pct is a zero-guarded percentage. Every displayed rate goes through it,
// so a zero denominator always renders as 0, never NaN.
func pct(num, den float64) float64 {
	return round2(safeDiv(num, den) * 100)
}

// round2 rounds half away from zero; ROI figures can be negative.
func round2(f float64) float64 { return math.Round(f*100) / 100 }

// accumulate partitions rows by key into one summary per distinct value.
// Rows for which keyOf reports ok=false are skipped entirely.
func accumulate[R any, S any](rows []R, keyOf func(R) (string, bool), init func(string) S, add func(*S, R)) map[string]*S {
	out := make(map[string]*S)
	for _, r := range rows {
		k, ok := keyOf(r)
		if !ok {
			continue
		}
		s, exists := out[k]
		if !exists {
			v := init(k)
			s = &v
			out[k] = s
		}
		add(s, r)
	}
	return out
}

// sortedDesc flattens a partition map descending by its headline measure,
// with the name as a deterministic tie-breaker.
func sortedDesc[S any](m map[string]*S, headline func(S) float64, name func(S) string) []S {
	out := make([]S, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := headline(out[i]), headline(out[j])
		if hi != hj {
			return hi > hj
		}
		return name(out[i]) < name(out[j])
	})
	return out
}

// DedupLatest keeps only the first row per key. Rows must arrive ordered
// most-recent first (the fetcher's descending day, created_at order), so
// "first" is the latest correction of the same logical event.
func DedupLatest[R any](rows []R, keyOf func(R) string) []R {
	seen := make(map[string]struct{}, len(rows))
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		k := keyOf(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// distinctSorted projects one dimension, drops blanks, de-duplicates and
// sorts lexicographically. Always returns a non-nil slice.
func distinctSorted[R any](rows []R, get func(R) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range rows {
		v := get(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// distinctInOrder is distinctSorted without the sort: values keep their
// first-encounter order. Used for months.
func distinctInOrder[R any](rows []R, get func(R) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range rows {
		v := get(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// distinctYears returns distinct non-zero years, most recent first.
func distinctYears[R any](rows []R, get func(R) int) []int {
	seen := map[int]struct{}{}
	out := []int{}
	for _, r := range rows {
		y := get(r)
		if y == 0 {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
