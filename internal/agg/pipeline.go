package agg

import "github.com/DiogoCoutinz/DashboardComercial/internal/models"

// ReducePipelineKPIs sums every closer-stage measure and derives the stage
// show-up rates and the two qualification conversion rates.
func ReducePipelineKPIs(rows []models.PipelineRecord) models.PipelineKPIs {
	var k models.PipelineKPIs
	for _, r := range rows {
		k.Discoveries += r.Discoveries
		k.DiscoveryNoShows += r.DiscoveryNoShows
		k.DiscoveryRescheduled += r.DiscoveryRescheduled
		k.FollowUps += r.FollowUps
		k.FollowUpNoShows += r.FollowUpNoShows
		k.FollowUpRescheduled += r.FollowUpRescheduled
		k.QAs += r.QAs
		k.QANoShows += r.QANoShows
		k.QARescheduled += r.QARescheduled
		k.MQLs += r.MQLs
		k.SQLs += r.SQLs
		k.VerbalAgreements += r.VerbalAgreements
		k.ShowUps += r.ShowUps
		k.LeadsBookedToday += r.LeadsBookedToday
		k.OriginMQLs += r.OriginMQLs
		k.OriginSQLs += r.OriginSQLs
		k.OriginVerbalAgreements += r.OriginVerbalAgreements
	}
	k.DiscoveryShowUpRate = pct(float64(k.Discoveries-k.DiscoveryNoShows), float64(k.Discoveries))
	k.FollowUpShowUpRate = pct(float64(k.FollowUps-k.FollowUpNoShows), float64(k.FollowUps))
	k.QAShowUpRate = pct(float64(k.QAs-k.QANoShows), float64(k.QAs))
	k.MQLToSQLRate = pct(float64(k.SQLs), float64(k.MQLs))
	k.SQLToVerbalRate = pct(float64(k.VerbalAgreements), float64(k.SQLs))
	return k
}

// PipelineByCloser groups rows per closer, descending by verbal agreements.
// Rows without a closer are dropped.
func PipelineByCloser(rows []models.PipelineRecord) []models.CloserSummary {
	m := accumulate(rows,
		func(r models.PipelineRecord) (string, bool) { return r.Closer, r.Closer != "" },
		func(k string) models.CloserSummary { return models.CloserSummary{Closer: k} },
		func(s *models.CloserSummary, r models.PipelineRecord) {
			s.Discoveries += r.Discoveries
			s.FollowUps += r.FollowUps
			s.QAs += r.QAs
			s.MQLs += r.MQLs
			s.SQLs += r.SQLs
			s.VerbalAgreements += r.VerbalAgreements
			s.NoShows += r.DiscoveryNoShows + r.FollowUpNoShows + r.QANoShows
		})
	return sortedDesc(m,
		func(s models.CloserSummary) float64 { return float64(s.VerbalAgreements) },
		func(s models.CloserSummary) string { return s.Closer })
}

// PipelineByOrigin attributes qualification outcomes back to the
// prospecting agent and channel that generated the lead. Rows missing
// either origin dimension are dropped.
func PipelineByOrigin(rows []models.PipelineRecord) []models.OriginSummary {
	m := accumulate(rows,
		func(r models.PipelineRecord) (string, bool) {
			if r.OriginAgent == "" || r.OriginChannel == "" {
				return "", false
			}
			return r.OriginAgent + " - " + r.OriginChannel, true
		},
		func(k string) models.OriginSummary { return models.OriginSummary{} },
		func(s *models.OriginSummary, r models.PipelineRecord) {
			s.Agent = r.OriginAgent
			s.Channel = r.OriginChannel
			s.MQLs += r.OriginMQLs
			s.SQLs += r.OriginSQLs
			s.VerbalAgreements += r.OriginVerbalAgreements
		})
	return sortedDesc(m,
		func(s models.OriginSummary) float64 { return float64(s.VerbalAgreements) },
		func(s models.OriginSummary) string { return s.Agent + " - " + s.Channel })
}

// PipelineFunnelOf derives the three-stage qualification funnel with the
// conversion percentage between each consecutive pair.
func PipelineFunnelOf(k models.PipelineKPIs) models.PipelineFunnel {
	return models.PipelineFunnel{
		MQLs:             k.MQLs,
		SQLs:             k.SQLs,
		VerbalAgreements: k.VerbalAgreements,
		MQLToSQLRate:     k.MQLToSQLRate,
		SQLToVerbalRate:  k.SQLToVerbalRate,
	}
}
