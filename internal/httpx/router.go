package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DiogoCoutinz/DashboardComercial/internal/agg"
	"github.com/DiogoCoutinz/DashboardComercial/internal/dashboard"
	"github.com/DiogoCoutinz/DashboardComercial/internal/filter"
	"github.com/DiogoCoutinz/DashboardComercial/internal/utils"
)

func NewRouter(log *slog.Logger, svc *dashboard.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Instrument)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api/prospecting", func(r chi.Router) {
		view := func(r *http.Request) dashboard.ProspectingView {
			return svc.Prospecting(r.Context(), filter.DecodeProspecting(r.URL.Query()))
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r)) })
		r.Get("/kpis", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).KPIs) })
		r.Get("/by-agent", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByAgent) })
		r.Get("/by-channel", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByChannel) })
		r.Get("/by-day", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByDay) })
		r.Get("/funnel", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Funnel) })
		r.Get("/advanced", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Advanced) })
		r.Get("/options", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Options) })
		r.Get("/roi", func(w http.ResponseWriter, r *http.Request) {
			cost, err := strconv.ParseFloat(r.URL.Query().Get("cost"), 64)
			if err != nil {
				http.Error(w, "cost required (number)", 400)
				return
			}
			deal, err := strconv.ParseFloat(r.URL.Query().Get("dealValue"), 64)
			if err != nil {
				http.Error(w, "dealValue required (number)", 400)
				return
			}
			k := view(r).KPIs
			writeJSON(w, agg.ComputeROI(k.LeadsBooked, k.ShowUps, deal, cost))
		})
	})

	mux.Route("/api/pipeline", func(r chi.Router) {
		view := func(r *http.Request) dashboard.PipelineView {
			return svc.Pipeline(r.Context(), filter.DecodePipeline(r.URL.Query()))
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r)) })
		r.Get("/kpis", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).KPIs) })
		r.Get("/by-closer", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByCloser) })
		r.Get("/by-origin", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByOrigin) })
		r.Get("/funnel", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Funnel) })
		r.Get("/options", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Options) })
	})

	mux.Route("/api/revenue", func(r chi.Router) {
		view := func(r *http.Request) dashboard.RevenueView {
			return svc.Revenue(r.Context(), filter.DecodeRevenue(r.URL.Query()))
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r)) })
		r.Get("/kpis", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).KPIs) })
		r.Get("/by-closer", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByCloser) })
		r.Get("/by-consultant", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByConsultant) })
		r.Get("/by-market", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByMarket) })
		r.Get("/by-offer", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByOffer) })
		r.Get("/by-payment", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByPaymentMode) })
		r.Get("/by-channel", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).ByChannel) })
		r.Get("/monthly", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Monthly) })
		r.Get("/options", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, view(r).Options) })
	})

	mux.Route("/api/growth", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, growth(svc, r))
		})
		r.Get("/weekly", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, growth(svc, r).Weekly)
		})
		r.Get("/objectives", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, growth(svc, r).Objectives)
		})
	})

	return mux
}

// growth defaults the roll-up window to the last 90 days and the objective
// period to the current calendar month.
func growth(svc *dashboard.Service, r *http.Request) dashboard.GrowthView {
	q := r.URL.Query()
	now := time.Now().UTC()

	since := q.Get("since")
	if _, ok := filter.ParseDay(since); !ok {
		since = now.AddDate(0, 0, -90).Format("2006-01-02")
	}
	year := now.Year()
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		year = y
	}
	month := q.Get("month")
	if month == "" {
		month = monthNames[now.Month()-1]
	}
	return svc.Growth(r.Context(), since, year, month)
}

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
