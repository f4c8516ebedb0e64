// Package filter holds the typed per-domain filter sets and their canonical
// encoding to and from a flat query representation. Decoding is lenient and
// never fails: unknown keys are ignored, a non-numeric year is dropped, and
// malformed dates pass through as opaque strings for the fetcher to reject.
package filter

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Prospecting struct {
	StartDate string
	EndDate   string
	Agents    []string
	Channels  []string
	Offers    []string
	Year      int
	Quarter   string
	Month     string
}

type Pipeline struct {
	StartDate      string
	EndDate        string
	Closers        []string
	Offers         []string
	OriginAgents   []string
	OriginChannels []string
	Year           int
	Quarter        string
	Month          string
}

type Revenue struct {
	StartDate   string
	EndDate     string
	Executives  []string
	Offers      []string
	Markets     []string
	Closers     []string
	Consultants []string
	Channels    []string
	Kind        string
	Year        int
	Quarter     string
	Month       string
}

func DecodeProspecting(v url.Values) Prospecting {
	return Prospecting{
		StartDate: strings.TrimSpace(v.Get("startDate")),
		EndDate:   strings.TrimSpace(v.Get("endDate")),
		Agents:    csvSet(v.Get("agents")),
		Channels:  csvSet(v.Get("channels")),
		Offers:    csvSet(v.Get("offers")),
		Year:      atoiDef(v.Get("year"), 0),
		Quarter:   strings.TrimSpace(v.Get("quarter")),
		Month:     strings.TrimSpace(v.Get("month")),
	}
}

func (f Prospecting) Encode() url.Values {
	v := url.Values{}
	setScalar(v, "startDate", f.StartDate)
	setScalar(v, "endDate", f.EndDate)
	setCSV(v, "agents", f.Agents)
	setCSV(v, "channels", f.Channels)
	setCSV(v, "offers", f.Offers)
	setYear(v, f.Year)
	setScalar(v, "quarter", f.Quarter)
	setScalar(v, "month", f.Month)
	return v
}

// Clear resets every predicate.
func (f Prospecting) Clear() Prospecting { return Prospecting{} }

func DecodePipeline(v url.Values) Pipeline {
	return Pipeline{
		StartDate:      strings.TrimSpace(v.Get("startDate")),
		EndDate:        strings.TrimSpace(v.Get("endDate")),
		Closers:        csvSet(v.Get("closers")),
		Offers:         csvSet(v.Get("offers")),
		OriginAgents:   csvSet(v.Get("originAgents")),
		OriginChannels: csvSet(v.Get("originChannels")),
		Year:           atoiDef(v.Get("year"), 0),
		Quarter:        strings.TrimSpace(v.Get("quarter")),
		Month:          strings.TrimSpace(v.Get("month")),
	}
}

func (f Pipeline) Encode() url.Values {
	v := url.Values{}
	setScalar(v, "startDate", f.StartDate)
	setScalar(v, "endDate", f.EndDate)
	setCSV(v, "closers", f.Closers)
	setCSV(v, "offers", f.Offers)
	setCSV(v, "originAgents", f.OriginAgents)
	setCSV(v, "originChannels", f.OriginChannels)
	setYear(v, f.Year)
	setScalar(v, "quarter", f.Quarter)
	setScalar(v, "month", f.Month)
	return v
}

// Clear resets every predicate.
func (f Pipeline) Clear() Pipeline { return Pipeline{} }

func DecodeRevenue(v url.Values) Revenue {
	return Revenue{
		StartDate:   strings.TrimSpace(v.Get("startDate")),
		EndDate:     strings.TrimSpace(v.Get("endDate")),
		Executives:  csvSet(v.Get("executives")),
		Offers:      csvSet(v.Get("offers")),
		Markets:     csvSet(v.Get("markets")),
		Closers:     csvSet(v.Get("closers")),
		Consultants: csvSet(v.Get("consultants")),
		Channels:    csvSet(v.Get("channels")),
		Kind:        strings.TrimSpace(v.Get("kind")),
		Year:        atoiDef(v.Get("year"), 0),
		Quarter:     strings.TrimSpace(v.Get("quarter")),
		Month:       strings.TrimSpace(v.Get("month")),
	}
}

func (f Revenue) Encode() url.Values {
	v := url.Values{}
	setScalar(v, "startDate", f.StartDate)
	setScalar(v, "endDate", f.EndDate)
	setCSV(v, "executives", f.Executives)
	setCSV(v, "offers", f.Offers)
	setCSV(v, "markets", f.Markets)
	setCSV(v, "closers", f.Closers)
	setCSV(v, "consultants", f.Consultants)
	setCSV(v, "channels", f.Channels)
	setScalar(v, "kind", f.Kind)
	setYear(v, f.Year)
	setScalar(v, "quarter", f.Quarter)
	setScalar(v, "month", f.Month)
	return v
}

// Clear on the revenue domain deliberately keeps the date range and drops
// everything else. The asymmetry with the other domains is intentional.
func (f Revenue) Clear() Revenue {
	return Revenue{StartDate: f.StartDate, EndDate: f.EndDate}
}

// WithKind returns a copy constrained to the given record kind.
func (f Revenue) WithKind(kind string) Revenue {
	f.Kind = kind
	return f
}

// Toggle adds item to the set if absent and removes it if present. An empty
// result means the dimension is unconstrained (its key is never serialized).
func Toggle(set []string, item string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == item {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// csvSet splits a comma-joined multi-select value, trimming and dropping
// blanks and duplicates. Order is not significant.
func csvSet(s string) []string {
	if s == "" {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// setCSV serializes a multi-select set sorted, so a given set always encodes
// to the same string.
func setCSV(v url.Values, key string, set []string) {
	if len(set) == 0 {
		return
	}
	sorted := append([]string(nil), set...)
	sort.Strings(sorted)
	v.Set(key, strings.Join(sorted, ","))
}

func setScalar(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setYear(v url.Values, year int) {
	if year != 0 {
		v.Set("year", strconv.Itoa(year))
	}
}

// ParseDay parses an ISO calendar date. Malformed date strings carried by a
// filter set are rejected here, at the fetch boundary, not at decode time;
// a date that does not parse leaves its dimension unconstrained.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func atoiDef(s string, d int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return d
	}
	return n
}
