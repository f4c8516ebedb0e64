package agg

import (
	"sort"

	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

// Re-submitted corrections share a logical key with the row they replace;
// only the most recently created row may count. Both domains are
// de-duplicated independently before being merged into the weekly view.

func pipelineDedupKey(r models.PipelineRecord) string {
	return r.Day.Format("2006-01-02") + "_" + r.Closer + "_" + r.Offer
}

func prospectingDedupKey(r models.ProspectingRecord) string {
	return r.Day.Format("2006-01-02") + "_" + r.Agent + "_" + r.Channel + "_" + r.Offer
}

// WeeklyRollup merges de-duplicated pipeline and prospecting rows into
// calendar-week buckets, ascending by week label. Rows without a week land
// in the "unspecified" bucket.
func WeeklyRollup(pipeline []models.PipelineRecord, prospecting []models.ProspectingRecord) []models.WeeklySummary {
	byWeek := map[string]*models.WeeklySummary{}
	week := func(w string) *models.WeeklySummary {
		if w == "" {
			w = Unspecified
		}
		s, ok := byWeek[w]
		if !ok {
			s = &models.WeeklySummary{Week: w}
			byWeek[w] = s
		}
		return s
	}

	for _, r := range DedupLatest(pipeline, pipelineDedupKey) {
		s := week(r.Week)
		s.Discoveries += r.Discoveries
		s.DiscoveryAttendances += r.DiscoveryAttendances
		s.NoShows += r.DiscoveryNoShows + r.FollowUpNoShows + r.QANoShows
		s.Rescheduled += r.DiscoveryRescheduled + r.FollowUpRescheduled + r.QARescheduled
		s.FollowUps += r.FollowUps
		s.QAs += r.QAs
		s.MQLs += r.MQLs
		s.SQLs += r.SQLs
		s.VerbalAgreements += r.VerbalAgreements
	}

	for _, r := range DedupLatest(prospecting, prospectingDedupKey) {
		s := week(r.Week)
		s.Bookings += r.MeetingsBooked
		s.LeadsBooked += r.LeadsBooked
		s.ShowUps += r.ShowUps
	}

	out := make([]models.WeeklySummary, 0, len(byWeek))
	for _, v := range byWeek {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// MonthlyObjectivesOf aggregates the current-month objective counters:
// calls, bookings split between the Cold Calling channel and everything
// else, and MQLs from de-duplicated pipeline rows, with origin MQLs
// credited back to the prospecting agent that generated them.
func MonthlyObjectivesOf(prospecting []models.ProspectingRecord, pipeline []models.PipelineRecord) models.MonthlyObjectives {
	const coldCalling = "Cold Calling"

	var o models.MonthlyObjectives
	byAgent := map[string]*models.AgentObjectives{}
	for _, r := range prospecting {
		o.Calls += r.CallsMade
		a, ok := byAgent[r.Agent]
		if !ok {
			a = &models.AgentObjectives{Agent: r.Agent}
			byAgent[r.Agent] = a
		}
		a.Calls += r.CallsMade
		if r.Channel == coldCalling {
			o.ColdCallBookings += r.MeetingsBooked
			a.ColdCallBookings += r.MeetingsBooked
		} else {
			o.OtherBookings += r.MeetingsBooked
			a.OtherBookings += r.MeetingsBooked
		}
	}

	for _, r := range DedupLatest(pipeline, pipelineDedupKey) {
		o.MQLs += r.MQLs
		// Origin MQLs count only toward agents already present in the
		// prospecting data for the period.
		if a, ok := byAgent[r.OriginAgent]; ok {
			a.MQLs += r.OriginMQLs
		}
	}

	o.Agents = make([]models.AgentObjectives, 0, len(byAgent))
	for _, a := range byAgent {
		o.Agents = append(o.Agents, *a)
	}
	sort.Slice(o.Agents, func(i, j int) bool {
		if o.Agents[i].Calls != o.Agents[j].Calls {
			return o.Agents[i].Calls > o.Agents[j].Calls
		}
		return o.Agents[i].Agent < o.Agents[j].Agent
	})
	return o
}
