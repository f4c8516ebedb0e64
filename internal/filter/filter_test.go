package filter

import (
	"net/url"
	"testing"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	v := url.Values{}
	v.Set("startDate", "2025-10-01")
	v.Set("endDate", "2025-12-31")
	v.Set("agents", "maria,joao")
	v.Set("channels", "Cold Calling")
	v.Set("year", "2025")
	v.Set("quarter", "Q4")

	f := DecodeProspecting(v)
	if f.StartDate != "2025-10-01" || f.EndDate != "2025-12-31" {
		t.Fatalf("date range: %+v", f)
	}
	if len(f.Agents) != 2 || f.Year != 2025 || f.Quarter != "Q4" {
		t.Fatalf("decoded: %+v", f)
	}

	back := DecodeProspecting(f.Encode())
	if back.Encode().Encode() != f.Encode().Encode() {
		t.Fatalf("round trip mismatch: %q vs %q", back.Encode().Encode(), f.Encode().Encode())
	}
}

func TestEncodeStableAcrossOrder(t *testing.T) {
	a := Prospecting{Agents: []string{"b", "a", "c"}}
	b := Prospecting{Agents: []string{"c", "a", "b"}}
	if a.Encode().Encode() != b.Encode().Encode() {
		t.Fatalf("encoding depends on set order: %q vs %q", a.Encode().Encode(), b.Encode().Encode())
	}
	if got := a.Encode().Get("agents"); got != "a,b,c" {
		t.Fatalf("expected sorted csv, got %q", got)
	}
}

func TestDecodeLenient(t *testing.T) {
	v := url.Values{}
	v.Set("year", "not-a-year")
	v.Set("agents", " , ,, ")
	v.Set("bogus", "whatever")
	v.Set("startDate", "31/12/2025") // malformed, passes through for the fetcher to reject

	f := DecodeProspecting(v)
	if f.Year != 0 {
		t.Fatalf("invalid year should be dropped, got %d", f.Year)
	}
	if len(f.Agents) != 0 {
		t.Fatalf("blank tokens should be dropped, got %v", f.Agents)
	}
	if f.StartDate != "31/12/2025" {
		t.Fatalf("malformed date should pass through, got %q", f.StartDate)
	}
}

func TestEmptyDimensionsOmitKeys(t *testing.T) {
	v := Prospecting{}.Encode()
	if len(v) != 0 {
		t.Fatalf("empty filter must encode to no keys, got %v", v)
	}
}

func TestToggle(t *testing.T) {
	set := Toggle(nil, "x")
	if len(set) != 1 || set[0] != "x" {
		t.Fatalf("add: %v", set)
	}
	set = Toggle(set, "y")
	if len(set) != 2 {
		t.Fatalf("add second: %v", set)
	}
	set = Toggle(set, "x")
	if len(set) != 1 || set[0] != "y" {
		t.Fatalf("remove: %v", set)
	}
	if set = Toggle(set, "y"); set != nil {
		t.Fatalf("emptied set must be nil so its key is dropped, got %v", set)
	}
}

func TestClearBehaviors(t *testing.T) {
	p := Prospecting{StartDate: "2025-01-01", Agents: []string{"a"}, Year: 2025}
	if got := p.Clear(); got.StartDate != "" || got.Agents != nil || got.Year != 0 {
		t.Fatalf("prospecting clear must reset everything: %+v", got)
	}

	r := Revenue{StartDate: "2025-01-01", EndDate: "2025-03-31", Markets: []string{"PT"}, Year: 2025}
	got := r.Clear()
	if got.StartDate != "2025-01-01" || got.EndDate != "2025-03-31" {
		t.Fatalf("revenue clear must keep the date range: %+v", got)
	}
	if got.Markets != nil || got.Year != 0 {
		t.Fatalf("revenue clear must drop the other dimensions: %+v", got)
	}
}

func TestDecodeDuplicateTokens(t *testing.T) {
	v := url.Values{}
	v.Set("channels", "ads,ads,email")
	f := DecodeProspecting(v)
	if len(f.Channels) != 2 {
		t.Fatalf("duplicates should collapse, got %v", f.Channels)
	}
}
