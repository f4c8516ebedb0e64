package agg

import (
	"sort"
	"strings"

	"github.com/DiogoCoutinz/DashboardComercial/internal/models"
)

// onlyProjects drops cost-kind rows. Every revenue reducer goes through it
// so a caller that forgot to push the kind predicate down still never sums
// costs into revenue.
func onlyProjects(rows []models.RevenueRecord) []models.RevenueRecord {
	out := make([]models.RevenueRecord, 0, len(rows))
	for _, r := range rows {
		if r.Kind == models.KindProject {
			out = append(out, r)
		}
	}
	return out
}

func ticket(r models.RevenueRecord) float64 {
	if r.Ticket == nil {
		return 0
	}
	return *r.Ticket
}

// ReduceRevenueKPIs sums deal values over project rows. A nil ticket counts
// the project but contributes zero revenue; the average divides by the
// project count.
func ReduceRevenueKPIs(rows []models.RevenueRecord) models.RevenueKPIs {
	rows = onlyProjects(rows)
	var k models.RevenueKPIs
	for _, r := range rows {
		k.Projects++
		k.Revenue += ticket(r)
	}
	k.Revenue = round2(k.Revenue)
	k.AvgTicket = round2(safeDiv(k.Revenue, float64(k.Projects)))
	return k
}

func revenueBy(rows []models.RevenueRecord, keyOf func(models.RevenueRecord) (string, bool)) []models.RevenueGroup {
	m := accumulate(onlyProjects(rows), keyOf,
		func(k string) models.RevenueGroup { return models.RevenueGroup{Key: k} },
		func(s *models.RevenueGroup, r models.RevenueRecord) {
			s.Projects++
			s.Revenue += ticket(r)
		})
	out := sortedDesc(m,
		func(s models.RevenueGroup) float64 { return s.Revenue },
		func(s models.RevenueGroup) string { return s.Key })
	for i := range out {
		out[i].Revenue = round2(out[i].Revenue)
	}
	return out
}

// drop yields the value as-is and drops blank keys.
func drop(v string) (string, bool) { return v, v != "" }

// bucket folds blank keys into the Unspecified bucket.
func bucket(v string) (string, bool) {
	if v == "" {
		return Unspecified, true
	}
	return v, true
}

// RevenueByCloser groups project revenue per closer; rows without a closer
// are dropped.
func RevenueByCloser(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return drop(r.Closer) })
}

// RevenueByConsultant groups project revenue per consultant; rows without
// one are dropped.
func RevenueByConsultant(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return drop(r.Consultant) })
}

// RevenueByChannel groups project revenue per acquisition channel; rows
// without one are dropped.
func RevenueByChannel(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return drop(r.Channel) })
}

// RevenueByMarket groups project revenue per market; rows without one land
// in the "unspecified" bucket. The drop-vs-bucket split across dimensions
// is intentional and preserved per dimension.
func RevenueByMarket(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return bucket(r.Market) })
}

// RevenueByPaymentMode groups project revenue per payment mode; rows
// without one land in the "unspecified" bucket.
func RevenueByPaymentMode(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return bucket(r.PaymentMode) })
}

// RevenueByOffer groups project revenue per offer; rows without one land in
// the "unspecified" bucket.
func RevenueByOffer(rows []models.RevenueRecord) []models.RevenueGroup {
	return revenueBy(rows, func(r models.RevenueRecord) (string, bool) { return bucket(r.Offer) })
}

// monthOrder gives calendar positions to the precomputed month labels.
// Unknown labels sort first, as found.
var monthOrder = map[string]int{
	"january": 0, "february": 1, "march": 2, "april": 3,
	"may": 4, "june": 5, "july": 6, "august": 7,
	"september": 8, "october": 9, "november": 10, "december": 11,
}

func monthIndex(m string) int {
	if i, ok := monthOrder[strings.ToLower(m)]; ok {
		return i
	}
	return -1
}

// RevenueMonthly sums project revenue per (year, month), ascending in
// calendar order for trend charts.
func RevenueMonthly(rows []models.RevenueRecord) []models.MonthlyRevenue {
	type key struct {
		year  int
		month string
	}
	m := map[key]*models.MonthlyRevenue{}
	for _, r := range onlyProjects(rows) {
		k := key{r.Year, r.Month}
		s, ok := m[k]
		if !ok {
			s = &models.MonthlyRevenue{Year: r.Year, Month: r.Month}
			m[k] = s
		}
		s.Projects++
		s.Revenue += ticket(r)
	}
	out := make([]models.MonthlyRevenue, 0, len(m))
	for _, v := range m {
		v.Revenue = round2(v.Revenue)
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return monthIndex(out[i].Month) < monthIndex(out[j].Month)
	})
	return out
}
