package agg

import (
	"sort"

	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

// ReduceProspectingKPIs sums every prospecting measure and derives the
// domain's rates. Nullable response times are averaged only over rows that
// carry one; days-to-discovery averages only rows with a positive value.
func ReduceProspectingKPIs(rows []models.ProspectingRecord) models.ProspectingKPIs {
	var k models.ProspectingKPIs
	var rtSum float64
	var rtN int
	var daysSum float64
	var daysN int
	for _, r := range rows {
		k.CallsMade += r.CallsMade
		k.CallsAnswered += r.CallsAnswered
		k.DecisionMakersReached += r.DecisionMakersReached
		k.DecisionMakersQualified += r.DecisionMakersQualified
		k.Messages += r.Messages
		k.Replies += r.Replies
		k.QualifiedReplies += r.QualifiedReplies
		k.Submissions += r.Submissions
		k.LeadsResponded += r.LeadsResponded
		k.MeetingsBooked += r.MeetingsBooked
		k.LeadsBooked += r.LeadsBooked
		k.ShowUps += r.ShowUps
		if r.AvgResponseTime != nil {
			rtSum += *r.AvgResponseTime
			rtN++
		}
		if r.DaysToDiscovery > 0 {
			daysSum += float64(r.DaysToDiscovery)
			daysN++
		}
	}
	k.AnswerRate = pct(float64(k.CallsAnswered), float64(k.CallsMade))
	// Show-up rate divides by meetings booked, not leads booked.
	k.ShowUpRate = pct(float64(k.ShowUps), float64(k.MeetingsBooked))
	k.ConversionRate = pct(float64(k.MeetingsBooked), float64(k.Submissions))
	k.AvgResponseTime = round2(safeDiv(rtSum, float64(rtN)))
	k.AvgDaysToDiscovery = round2(safeDiv(daysSum, float64(daysN)))
	return k
}

// ProspectingByAgent groups rows per agent, descending by meetings booked.
// Each partition carries its own zero-guarded rates; the per-agent show-up
// rate divides by leads booked, not meetings booked.
func ProspectingByAgent(rows []models.ProspectingRecord) []models.AgentSummary {
	m := accumulate(rows,
		func(r models.ProspectingRecord) (string, bool) { return r.Agent, true },
		func(k string) models.AgentSummary { return models.AgentSummary{Agent: k} },
		func(s *models.AgentSummary, r models.ProspectingRecord) {
			s.CallsMade += r.CallsMade
			s.CallsAnswered += r.CallsAnswered
			s.MeetingsBooked += r.MeetingsBooked
			s.ShowUps += r.ShowUps
			s.Submissions += r.Submissions
			s.LeadsBooked += r.LeadsBooked
		})
	out := sortedDesc(m,
		func(s models.AgentSummary) float64 { return float64(s.MeetingsBooked) },
		func(s models.AgentSummary) string { return s.Agent })
	for i := range out {
		out[i].AnswerRate = pct(float64(out[i].CallsAnswered), float64(out[i].CallsMade))
		out[i].ShowUpRate = pct(float64(out[i].ShowUps), float64(out[i].LeadsBooked))
		out[i].ConversionRate = pct(float64(out[i].MeetingsBooked), float64(out[i].Submissions))
	}
	return out
}

// ProspectingByChannel groups rows per acquisition channel, descending by
// meetings booked, with zero-guarded partition-local rates.
func ProspectingByChannel(rows []models.ProspectingRecord) []models.ChannelSummary {
	m := accumulate(rows,
		func(r models.ProspectingRecord) (string, bool) { return r.Channel, true },
		func(k string) models.ChannelSummary { return models.ChannelSummary{Channel: k} },
		func(s *models.ChannelSummary, r models.ProspectingRecord) {
			s.CallsMade += r.CallsMade
			s.CallsAnswered += r.CallsAnswered
			s.Messages += r.Messages
			s.Replies += r.Replies
			s.Submissions += r.Submissions
			s.MeetingsBooked += r.MeetingsBooked
			s.ShowUps += r.ShowUps
		})
	out := sortedDesc(m,
		func(s models.ChannelSummary) float64 { return float64(s.MeetingsBooked) },
		func(s models.ChannelSummary) string { return s.Channel })
	for i := range out {
		out[i].AnswerRate = pct(float64(out[i].CallsAnswered), float64(out[i].CallsMade))
		out[i].ResponseRate = pct(float64(out[i].Replies), float64(out[i].Messages))
		out[i].ShowUpRate = pct(float64(out[i].ShowUps), float64(out[i].MeetingsBooked))
	}
	return out
}

// ProspectingByDay sums the headline series per day, ascending by day for
// chart consumption.
func ProspectingByDay(rows []models.ProspectingRecord) []models.DaySummary {
	m := accumulate(rows,
		func(r models.ProspectingRecord) (string, bool) { return r.Day.Format("2006-01-02"), true },
		func(k string) models.DaySummary { return models.DaySummary{Day: k} },
		func(s *models.DaySummary, r models.ProspectingRecord) {
			s.CallsMade += r.CallsMade
			s.MeetingsBooked += r.MeetingsBooked
			s.ShowUps += r.ShowUps
			s.Submissions += r.Submissions
		})
	out := make([]models.DaySummary, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// ProspectingFunnelOf derives the five-stage funnel from already-reduced
// KPIs. Stages are independent sums and are never clamped against each
// other; see NonMonotonicStages for the data-quality flag.
func ProspectingFunnelOf(k models.ProspectingKPIs) models.ProspectingFunnel {
	return models.ProspectingFunnel{
		Outreach:    k.CallsMade + k.Messages,
		Responses:   k.CallsAnswered + k.Replies,
		Submissions: k.Submissions,
		Bookings:    k.MeetingsBooked,
		ShowUps:     k.ShowUps,
	}
}

// NonMonotonicStages names the funnel stages whose value exceeds the stage
// before them. Inconsistent source data is flagged, never corrected.
func NonMonotonicStages(f models.ProspectingFunnel) []string {
	stages := []struct {
		name string
		n    int
	}{
		{"outreach", f.Outreach},
		{"responses", f.Responses},
		{"submissions", f.Submissions},
		{"bookings", f.Bookings},
		{"show_ups", f.ShowUps},
	}
	var bad []string
	for i := 1; i < len(stages); i++ {
		if stages[i].n > stages[i-1].n {
			bad = append(bad, stages[i].name)
		}
	}
	return bad
}

// AdvancedMetricsOf derives the secondary efficiency rates from reduced
// KPIs, with the same zero-denominator policy as the headline rates.
func AdvancedMetricsOf(k models.ProspectingKPIs) models.AdvancedMetrics {
	return models.AdvancedMetrics{
		OverallEfficiency: pct(float64(k.MeetingsBooked), float64(k.CallsMade)),
		LeadQuality:       pct(float64(k.ShowUps), float64(k.LeadsResponded)),
		FunnelEfficiency:  pct(float64(k.ShowUps), float64(k.Submissions)),
	}
}

// ComputeROI derives campaign return figures from counts and spend.
func ComputeROI(leads, conversions int, avgDealValue, cost float64) models.ROI {
	revenue := float64(conversions) * avgDealValue
	return models.ROI{
		Revenue:           revenue,
		Cost:              cost,
		ROI:               pct(revenue-cost, cost),
		CostPerLead:       round2(safeDiv(cost, float64(leads))),
		CostPerConversion: round2(safeDiv(cost, float64(conversions))),
	}
}
