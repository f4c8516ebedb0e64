package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DiogoCoutinz/DashboardComercial/internal/dashboard"
	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
	"github.com/DiogoCoutinz/DashboardComercial/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad day %q: %v", s, err)
		}
		return d
	}
	ticket := 4000.0

	src := store.NewMemoryStore()
	src.SeedProspecting(
		models.ProspectingRecord{
			ID: "p1", Day: day("2025-03-10"), Year: 2025, Quarter: "Q1", Month: "march", Week: "2025-W11",
			Agent: "ana", Channel: "Cold Calling", Offer: "core",
			CallsMade: 100, CallsAnswered: 40, MeetingsBooked: 10, LeadsBooked: 12, ShowUps: 7,
		},
		models.ProspectingRecord{
			ID: "p2", Day: day("2025-03-11"), Year: 2025, Quarter: "Q1", Month: "march", Week: "2025-W11",
			Agent: "bruno", Channel: "LinkedIn", Offer: "core",
			CallsMade: 50, CallsAnswered: 10, MeetingsBooked: 4, LeadsBooked: 5, ShowUps: 2,
		},
	)
	src.SeedRevenue(
		models.RevenueRecord{
			ID: "r1", Day: day("2025-03-20"), Year: 2025, Quarter: "Q1", Month: "march", Week: "2025-W12",
			Closer: "rui", Market: "PT", Offer: "core", PaymentMode: "upfront", Channel: "Cold Calling",
			Ticket: &ticket, Kind: models.KindProject,
		},
		models.RevenueRecord{
			ID: "r2", Day: day("2025-03-21"), Year: 2025, Quarter: "Q1", Month: "march", Week: "2025-W12",
			Closer: "rui", Market: "PT", Offer: "core", PaymentMode: "upfront", Channel: "Cold Calling",
			Kind: models.KindCost,
		},
	)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := dashboard.NewService(src, log)
	ts := httptest.NewServer(NewRouter(log, svc))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != 200 {
			t.Errorf("GET %s: status %d", path, resp.StatusCode)
		}
	}
}

func TestProspectingKPIsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var k models.ProspectingKPIs
	getJSON(t, ts.URL+"/api/prospecting/kpis", &k)
	if k.CallsMade != 150 {
		t.Errorf("calls_made = %d, want 150", k.CallsMade)
	}

	getJSON(t, ts.URL+"/api/prospecting/kpis?agents=ana", &k)
	if k.CallsMade != 100 {
		t.Errorf("filtered calls_made = %d, want 100", k.CallsMade)
	}
}

func TestProspectingFullView(t *testing.T) {
	ts := newTestServer(t)

	var v dashboard.ProspectingView
	getJSON(t, ts.URL+"/api/prospecting?channels=Cold+Calling", &v)
	if v.KPIs.CallsMade != 100 {
		t.Errorf("kpis.calls_made = %d, want 100", v.KPIs.CallsMade)
	}
	if len(v.ByAgent) != 1 || v.ByAgent[0].Agent != "ana" {
		t.Errorf("by_agent = %+v", v.ByAgent)
	}
	if len(v.Options.Channels) != 2 {
		t.Errorf("options ignore filters: channels = %v", v.Options.Channels)
	}
}

func TestRevenueKPIsExcludeCosts(t *testing.T) {
	ts := newTestServer(t)

	var k models.RevenueKPIs
	getJSON(t, ts.URL+"/api/revenue/kpis", &k)
	if k.Projects != 1 || k.Revenue != 4000 {
		t.Errorf("kpis = %+v, want 1 project / 4000 revenue", k)
	}
}

func TestROIEndpointValidatesInput(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/prospecting/roi")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("missing cost: status %d, want 400", resp.StatusCode)
	}

	var roi models.ROI
	getJSON(t, ts.URL+"/api/prospecting/roi?cost=1000&dealValue=500", &roi)
	if roi.Cost != 1000 {
		t.Errorf("roi = %+v", roi)
	}
}

func TestGrowthWeeklyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var weeks []models.WeeklySummary
	getJSON(t, ts.URL+"/api/growth/weekly?since=2025-03-01", &weeks)
	if len(weeks) != 1 || weeks[0].Week != "2025-W11" {
		t.Fatalf("weekly = %+v", weeks)
	}
	if weeks[0].Bookings != 14 {
		t.Errorf("bookings = %d, want 14", weeks[0].Bookings)
	}

	var v dashboard.GrowthView
	getJSON(t, ts.URL+"/api/growth?since=2025-03-01", &v)
	if len(v.BookingsTrend) != 1 || v.BookingsTrend[0] != 14 {
		t.Errorf("bookings_trend = %v", v.BookingsTrend)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
