package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/DiogoCoutinz/DashboardComercial/internal/filter"
	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

func (s *Store) logErr(domain string, err error) {
	s.log.Error("fetch failed, serving empty row set",
		slog.String("domain", domain), slog.String("err", err.Error()))
}

func (s *Store) Prospecting(ctx context.Context, f filter.Prospecting) []models.ProspectingRecord {
	sql, args := prospectingQuery(f)
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		s.logErr("prospecting", err)
		return []models.ProspectingRecord{}
	}
	out, err := pgx.CollectRows(rows, scanProspecting)
	if err != nil {
		s.logErr("prospecting", err)
		return []models.ProspectingRecord{}
	}
	return out
}

func scanProspecting(row pgx.CollectableRow) (models.ProspectingRecord, error) {
	var r models.ProspectingRecord
	err := row.Scan(
		&r.ID, &r.Day, &r.Year, &r.Quarter, &r.Month, &r.Week,
		&r.Agent, &r.Channel, &r.Offer,
		&r.CallsMade, &r.CallsAnswered, &r.DecisionMakersReached, &r.DecisionMakersQualified,
		&r.Messages, &r.Replies, &r.QualifiedReplies, &r.Submissions, &r.LeadsResponded,
		&r.AvgResponseTime, &r.MeetingsBooked, &r.LeadsBooked, &r.ShowUps, &r.DaysToDiscovery,
		&r.CreatedAt,
	)
	return r, err
}

func (s *Store) Pipeline(ctx context.Context, f filter.Pipeline) []models.PipelineRecord {
	sql, args := pipelineQuery(f)
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		s.logErr("pipeline", err)
		return []models.PipelineRecord{}
	}
	out, err := pgx.CollectRows(rows, scanPipeline)
	if err != nil {
		s.logErr("pipeline", err)
		return []models.PipelineRecord{}
	}
	return out
}

func scanPipeline(row pgx.CollectableRow) (models.PipelineRecord, error) {
	var r models.PipelineRecord
	err := row.Scan(
		&r.ID, &r.Day, &r.Year, &r.Quarter, &r.Month, &r.Week,
		&r.Closer, &r.Offer, &r.OriginAgent, &r.OriginChannel,
		&r.Discoveries, &r.DiscoveryNoShows, &r.DiscoveryRescheduled,
		&r.FollowUps, &r.FollowUpNoShows, &r.FollowUpRescheduled,
		&r.QAs, &r.QANoShows, &r.QARescheduled,
		&r.MQLs, &r.SQLs, &r.VerbalAgreements,
		&r.OriginMQLs, &r.OriginSQLs, &r.OriginVerbalAgreements,
		&r.LeadsContacted, &r.CallsAnswered, &r.LeadsBookedToday, &r.ShowUps,
		&r.DiscoveryAttendances, &r.DaysToFollowUp, &r.SalesCycleDays,
		&r.CreatedAt,
	)
	return r, err
}

func (s *Store) Revenue(ctx context.Context, f filter.Revenue) []models.RevenueRecord {
	sql, args := revenueQuery(f)
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		s.logErr("revenue", err)
		return []models.RevenueRecord{}
	}
	out, err := pgx.CollectRows(rows, scanRevenue)
	if err != nil {
		s.logErr("revenue", err)
		return []models.RevenueRecord{}
	}
	return out
}

func scanRevenue(row pgx.CollectableRow) (models.RevenueRecord, error) {
	var r models.RevenueRecord
	err := row.Scan(
		&r.ID, &r.Day, &r.Year, &r.Quarter, &r.Month, &r.Week,
		&r.Executive, &r.Consultant, &r.Closer, &r.Market,
		&r.Offer, &r.PaymentMode, &r.Channel,
		&r.Ticket, &r.Kind, &r.ProjectStart, &r.ProjectDurationDays,
		&r.CreatedAt,
	)
	return r, err
}
