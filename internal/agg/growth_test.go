package agg

import (
	"testing"
	"time"

	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

func TestDedupLatestKeepsFirstPerKey(t *testing.T) {
	// Most-recent first, as the fetcher returns them.
	rows := []models.PipelineRecord{
		{Day: day("2025-10-06"), Closer: "rui", Offer: "audit", MQLs: 5, CreatedAt: day("2025-10-07")},
		{Day: day("2025-10-06"), Closer: "rui", Offer: "audit", MQLs: 3, CreatedAt: day("2025-10-06")},
		{Day: day("2025-10-06"), Closer: "ana", Offer: "audit", MQLs: 2, CreatedAt: day("2025-10-06")},
	}
	out := DedupLatest(rows, pipelineDedupKey)
	if len(out) != 2 {
		t.Fatalf("want 2 rows after de-dup, got %d", len(out))
	}
	if out[0].MQLs != 5 {
		t.Fatalf("the later-created row must win: %+v", out[0])
	}
}

func TestWeeklyRollupDeduplicatesBeforeSumming(t *testing.T) {
	pipeline := []models.PipelineRecord{
		{Day: day("2025-10-06"), Week: "W41", Closer: "rui", Offer: "audit", MQLs: 5, VerbalAgreements: 1, CreatedAt: day("2025-10-07")},
		// Earlier correction of the same logical event: must contribute nothing.
		{Day: day("2025-10-06"), Week: "W41", Closer: "rui", Offer: "audit", MQLs: 3, VerbalAgreements: 2, CreatedAt: day("2025-10-06")},
		{Day: day("2025-10-08"), Week: "W41", Closer: "ana", Offer: "audit", MQLs: 2, CreatedAt: day("2025-10-08")},
	}
	prospecting := []models.ProspectingRecord{
		{Day: day("2025-10-07"), Week: "W41", Agent: "maria", Channel: "ads", Offer: "audit", MeetingsBooked: 4},
		{Day: day("2025-10-07"), Week: "W41", Agent: "maria", Channel: "ads", Offer: "audit", MeetingsBooked: 9},
		{Day: day("2025-10-14"), Week: "W42", Agent: "maria", Channel: "ads", Offer: "audit", MeetingsBooked: 2},
	}
	out := WeeklyRollup(pipeline, prospecting)
	if len(out) != 2 {
		t.Fatalf("want 2 weeks, got %+v", out)
	}
	w41 := out[0]
	if w41.Week != "W41" {
		t.Fatalf("weeks ascend: %+v", out)
	}
	if w41.MQLs != 7 || w41.VerbalAgreements != 1 {
		t.Fatalf("pipeline duplicates double-counted: %+v", w41)
	}
	if w41.Bookings != 4 {
		t.Fatalf("prospecting duplicates double-counted: %+v", w41)
	}
	if out[1].Week != "W42" || out[1].Bookings != 2 {
		t.Fatalf("second week: %+v", out[1])
	}
}

func TestWeeklyRollupBucketsMissingWeek(t *testing.T) {
	rows := []models.PipelineRecord{{Day: day("2025-10-06"), Week: "", Closer: "rui", MQLs: 1}}
	out := WeeklyRollup(rows, nil)
	if len(out) != 1 || out[0].Week != Unspecified {
		t.Fatalf("missing week must bucket under %q: %+v", Unspecified, out)
	}
}

func TestMonthlyObjectives(t *testing.T) {
	prospecting := []models.ProspectingRecord{
		{Agent: "maria", Channel: "Cold Calling", CallsMade: 50, MeetingsBooked: 3},
		{Agent: "maria", Channel: "ads", CallsMade: 0, MeetingsBooked: 2},
		{Agent: "joao", Channel: "Cold Calling", CallsMade: 30, MeetingsBooked: 1},
	}
	pipeline := []models.PipelineRecord{
		{Day: day("2025-10-06"), Closer: "rui", OriginAgent: "maria", MQLs: 4, OriginMQLs: 2, CreatedAt: time.Now()},
		{Day: day("2025-10-07"), Closer: "rui", OriginAgent: "ghost", MQLs: 1, OriginMQLs: 1, CreatedAt: time.Now()},
	}
	o := MonthlyObjectivesOf(prospecting, pipeline)
	if o.Calls != 80 || o.ColdCallBookings != 4 || o.OtherBookings != 2 {
		t.Fatalf("totals: %+v", o)
	}
	if o.MQLs != 5 {
		t.Fatalf("mqls come from de-duplicated pipeline rows: %+v", o)
	}
	if len(o.Agents) != 2 || o.Agents[0].Agent != "maria" {
		t.Fatalf("agents: %+v", o.Agents)
	}
	if o.Agents[0].MQLs != 2 {
		t.Fatalf("origin mqls credited to the prospecting agent: %+v", o.Agents[0])
	}
	// "ghost" has no prospecting rows this period, so its origin MQLs are
	// not attributed to anyone.
	for _, a := range o.Agents {
		if a.Agent == "ghost" {
			t.Fatalf("unknown origin agent must not appear: %+v", o.Agents)
		}
	}
}
