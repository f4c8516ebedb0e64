package agg

import (
	"testing"

	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

func TestProspectingOptions(t *testing.T) {
	rows := []models.ProspectingRecord{
		{Agent: "maria", Channel: "email", Offer: "", Year: 2024, Quarter: "Q4", Month: "october"},
		{Agent: "joao", Channel: "ads", Offer: "audit", Year: 2025, Quarter: "Q1", Month: "january"},
		{Agent: "maria", Channel: "ads", Offer: "audit", Year: 2025, Quarter: "Q1", Month: "january"},
	}
	o := ProspectingOptionsOf(rows)
	if len(o.Agents) != 2 || o.Agents[0] != "joao" {
		t.Fatalf("agents sorted lexicographically: %v", o.Agents)
	}
	if len(o.Offers) != 1 {
		t.Fatalf("blanks removed, duplicates collapsed: %v", o.Offers)
	}
	if len(o.Years) != 2 || o.Years[0] != 2025 {
		t.Fatalf("years most recent first: %v", o.Years)
	}
	if len(o.Months) != 2 || o.Months[0] != "october" {
		t.Fatalf("months keep first-encounter order: %v", o.Months)
	}
}

func TestOptionsEmptyInput(t *testing.T) {
	o := ProspectingOptionsOf(nil)
	if o.Agents == nil || o.Channels == nil || o.Offers == nil || o.Years == nil || o.Quarters == nil || o.Months == nil {
		t.Fatalf("empty input must yield empty slices, not nil: %+v", o)
	}
	if len(o.Agents)+len(o.Years) != 0 {
		t.Fatalf("expected no values: %+v", o)
	}
	p := PipelineOptionsOf(nil)
	if p.Closers == nil || p.OriginAgents == nil {
		t.Fatalf("pipeline options: %+v", p)
	}
	r := RevenueOptionsOf(nil)
	if r.Markets == nil || r.Consultants == nil {
		t.Fatalf("revenue options: %+v", r)
	}
}

func TestRevenueOptionsDimensions(t *testing.T) {
	rows := []models.RevenueRecord{
		{Executive: "dc", Market: "PT", Closer: "rui", Consultant: "maria", Channel: "ads", Year: 2025, Quarter: "Q1", Month: "january"},
		{Executive: "dc", Market: "", Closer: "", Consultant: "maria", Channel: "ads", Year: 2025, Quarter: "Q1", Month: "january"},
	}
	o := RevenueOptionsOf(rows)
	if len(o.Executives) != 1 || len(o.Markets) != 1 || len(o.Closers) != 1 {
		t.Fatalf("options: %+v", o)
	}
}
