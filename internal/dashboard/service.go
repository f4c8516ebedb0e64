// Package dashboard assembles the per-domain view models. Every filter
// change runs one batch of independent fetch+reduce operations, joined
// all-complete so a view is always internally consistent. In-flight batches
// are never cancelled; a batch that finishes after a newer one was
// requested is discarded instead of overwriting fresher data.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/DiogoCoutinz/DashboardComercial/internal/agg"
	"github.com/DiogoCoutinz/DashboardComercial/internal/filter"
	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

// Source is the record fetcher contract: predicates pushed down, rows most
// recent first, failures already mapped to empty row sets.
type Source interface {
	Prospecting(ctx context.Context, f filter.Prospecting) []models.ProspectingRecord
	Pipeline(ctx context.Context, f filter.Pipeline) []models.PipelineRecord
	Revenue(ctx context.Context, f filter.Revenue) []models.RevenueRecord
}

type ProspectingView struct {
	KPIs      models.ProspectingKPIs    `json:"kpis"`
	ByAgent   []models.AgentSummary     `json:"by_agent"`
	ByChannel []models.ChannelSummary   `json:"by_channel"`
	ByDay     []models.DaySummary       `json:"by_day"`
	Funnel    models.ProspectingFunnel  `json:"funnel"`
	Advanced  models.AdvancedMetrics    `json:"advanced"`
	Options   models.ProspectingOptions `json:"options"`
}

type PipelineView struct {
	KPIs     models.PipelineKPIs    `json:"kpis"`
	ByCloser []models.CloserSummary `json:"by_closer"`
	ByOrigin []models.OriginSummary `json:"by_origin"`
	Funnel   models.PipelineFunnel  `json:"funnel"`
	Options  models.PipelineOptions `json:"options"`
}

type RevenueView struct {
	KPIs          models.RevenueKPIs      `json:"kpis"`
	ByCloser      []models.RevenueGroup   `json:"by_closer"`
	ByConsultant  []models.RevenueGroup   `json:"by_consultant"`
	ByMarket      []models.RevenueGroup   `json:"by_market"`
	ByOffer       []models.RevenueGroup   `json:"by_offer"`
	ByPaymentMode []models.RevenueGroup   `json:"by_payment_mode"`
	ByChannel     []models.RevenueGroup   `json:"by_channel"`
	Monthly       []models.MonthlyRevenue `json:"monthly"`
	Options       models.RevenueOptions   `json:"options"`
}

type GrowthView struct {
	Weekly     []models.WeeklySummary   `json:"weekly"`
	Objectives models.MonthlyObjectives `json:"objectives"`
	// BookingsTrend is the 4-week trailing moving average of weekly
	// bookings; WeekOverWeek is the growth between the last two weeks,
	// nil when the previous week had no bookings.
	BookingsTrend []float64 `json:"bookings_trend"`
	WeekOverWeek  *float64  `json:"week_over_week"`
}

type Service struct {
	src Source
	log *slog.Logger

	mu sync.Mutex
	// latest requested batch key per domain; a finished batch installs its
	// view only while its key is still the latest one.
	latest      map[string]string
	prospecting *ProspectingView
	pipeline    *PipelineView
	revenue     *RevenueView
	growth      *GrowthView
}

func NewService(src Source, log *slog.Logger) *Service {
	return &Service{src: src, log: log, latest: map[string]string{}}
}

func (s *Service) begin(domain, key string) string {
	batch := uuid.NewString()[:8]
	s.mu.Lock()
	s.latest[domain] = key
	s.mu.Unlock()
	s.log.Debug("batch started", slog.String("domain", domain), slog.String("batch", batch), slog.String("filters", key))
	return batch
}

// commit installs a completed batch's view unless a newer batch for the
// same domain was requested while it ran. Last still-current batch wins.
func (s *Service) commit(domain, key, batch string, install func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest[domain] != key {
		s.log.Debug("stale batch discarded", slog.String("domain", domain), slog.String("batch", batch))
		return
	}
	install()
}

func run(wg *sync.WaitGroup, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()
	}()
}

func (s *Service) Prospecting(ctx context.Context, f filter.Prospecting) ProspectingView {
	key := f.Encode().Encode()
	batch := s.begin("prospecting", key)

	var v ProspectingView
	var wg sync.WaitGroup
	run(&wg, func() {
		kpis := agg.ReduceProspectingKPIs(s.src.Prospecting(ctx, f))
		v.KPIs = kpis
		v.Funnel = agg.ProspectingFunnelOf(kpis)
		v.Advanced = agg.AdvancedMetricsOf(kpis)
		if bad := agg.NonMonotonicStages(v.Funnel); len(bad) > 0 {
			s.log.Warn("funnel stages not monotonic", slog.String("batch", batch), slog.Any("stages", bad))
		}
	})
	run(&wg, func() { v.ByAgent = agg.ProspectingByAgent(s.src.Prospecting(ctx, f)) })
	run(&wg, func() { v.ByChannel = agg.ProspectingByChannel(s.src.Prospecting(ctx, f)) })
	run(&wg, func() { v.ByDay = agg.ProspectingByDay(s.src.Prospecting(ctx, f)) })
	// Options always come from the unfiltered set.
	run(&wg, func() { v.Options = agg.ProspectingOptionsOf(s.src.Prospecting(ctx, filter.Prospecting{})) })
	wg.Wait()

	s.commit("prospecting", key, batch, func() { s.prospecting = &v })
	return v
}

func (s *Service) Pipeline(ctx context.Context, f filter.Pipeline) PipelineView {
	key := f.Encode().Encode()
	batch := s.begin("pipeline", key)

	var v PipelineView
	var wg sync.WaitGroup
	run(&wg, func() {
		kpis := agg.ReducePipelineKPIs(s.src.Pipeline(ctx, f))
		v.KPIs = kpis
		v.Funnel = agg.PipelineFunnelOf(kpis)
	})
	run(&wg, func() { v.ByCloser = agg.PipelineByCloser(s.src.Pipeline(ctx, f)) })
	run(&wg, func() { v.ByOrigin = agg.PipelineByOrigin(s.src.Pipeline(ctx, f)) })
	run(&wg, func() { v.Options = agg.PipelineOptionsOf(s.src.Pipeline(ctx, filter.Pipeline{})) })
	wg.Wait()

	s.commit("pipeline", key, batch, func() { s.pipeline = &v })
	return v
}

func (s *Service) Revenue(ctx context.Context, f filter.Revenue) RevenueView {
	key := f.Encode().Encode()
	batch := s.begin("revenue", key)

	// Revenue reductions only ever see project rows; the kind predicate is
	// pushed down with the rest.
	pf := f.WithKind(models.KindProject)

	var v RevenueView
	var wg sync.WaitGroup
	run(&wg, func() { v.KPIs = agg.ReduceRevenueKPIs(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByCloser = agg.RevenueByCloser(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByConsultant = agg.RevenueByConsultant(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByMarket = agg.RevenueByMarket(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByOffer = agg.RevenueByOffer(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByPaymentMode = agg.RevenueByPaymentMode(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.ByChannel = agg.RevenueByChannel(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.Monthly = agg.RevenueMonthly(s.src.Revenue(ctx, pf)) })
	run(&wg, func() { v.Options = agg.RevenueOptionsOf(s.src.Revenue(ctx, filter.Revenue{})) })
	wg.Wait()

	s.commit("revenue", key, batch, func() { s.revenue = &v })
	return v
}

// Growth builds the weekly roll-up since a given day plus the objective
// counters for one calendar month.
func (s *Service) Growth(ctx context.Context, since string, year int, month string) GrowthView {
	key := fmt.Sprintf("%s|%d|%s", since, year, month)
	batch := s.begin("growth", key)

	var v GrowthView
	var wg sync.WaitGroup
	run(&wg, func() {
		pipeline := s.src.Pipeline(ctx, filter.Pipeline{StartDate: since})
		prospecting := s.src.Prospecting(ctx, filter.Prospecting{StartDate: since})
		v.Weekly = agg.WeeklyRollup(pipeline, prospecting)

		bookings := make([]float64, len(v.Weekly))
		for i, w := range v.Weekly {
			bookings[i] = float64(w.Bookings)
		}
		v.BookingsTrend = agg.MovingAverage(bookings, 4)
		if n := len(bookings); n >= 2 {
			v.WeekOverWeek = agg.GrowthRate(bookings[n-1], bookings[n-2])
		}
	})
	run(&wg, func() {
		prospecting := s.src.Prospecting(ctx, filter.Prospecting{Year: year, Month: month})
		pipeline := s.src.Pipeline(ctx, filter.Pipeline{Year: year, Month: month})
		v.Objectives = agg.MonthlyObjectivesOf(prospecting, pipeline)
	})
	wg.Wait()

	s.commit("growth", key, batch, func() { s.growth = &v })
	return v
}

// CurrentProspecting returns the last installed view, if any. The returned
// snapshot is read-only and valid only for the render that received it.
func (s *Service) CurrentProspecting() (ProspectingView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prospecting == nil {
		return ProspectingView{}, false
	}
	return *s.prospecting, true
}

func (s *Service) CurrentPipeline() (PipelineView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline == nil {
		return PipelineView{}, false
	}
	return *s.pipeline, true
}

func (s *Service) CurrentRevenue() (RevenueView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revenue == nil {
		return RevenueView{}, false
	}
	return *s.revenue, true
}

func (s *Service) CurrentGrowth() (GrowthView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.growth == nil {
		return GrowthView{}, false
	}
	return *s.growth, true
}
