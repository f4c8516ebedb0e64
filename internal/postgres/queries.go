package postgres

import (
	"fmt"
	"strings"

	"github.com/DiogoCoutinz/DashboardComercial/internal/filter"
)

// Predicate translation: date range → inclusive comparisons on day,
// multi-select → set membership, year/quarter/month → equality. Absent
// predicates impose no constraint. Results are ordered most recent first;
// the weekly de-duplication depends on that order.

const orderByRecency = " ORDER BY day DESC, created_at DESC"

type conds struct {
	where []string
	args  []any
}

func (c *conds) add(expr string, val any) {
	c.args = append(c.args, val)
	c.where = append(c.where, fmt.Sprintf(expr, len(c.args)))
}

func (c *conds) dateRange(start, end string) {
	// A malformed date is dropped here: the dimension becomes unconstrained.
	if d, ok := filter.ParseDay(start); ok {
		c.add("day >= $%d", d)
	}
	if d, ok := filter.ParseDay(end); ok {
		c.add("day <= $%d", d)
	}
}

func (c *conds) in(col string, set []string) {
	if len(set) > 0 {
		c.add(col+" = ANY($%d)", set)
	}
}

func (c *conds) eq(col string, val string) {
	if val != "" {
		c.add(col+" = $%d", val)
	}
}

func (c *conds) period(year int, quarter, month string) {
	if year != 0 {
		c.add("year = $%d", year)
	}
	c.eq("quarter", quarter)
	c.eq("month", month)
}

func (c *conds) clause() string {
	if len(c.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.where, " AND ")
}

const selectProspecting = `SELECT id, day, year, quarter, month, week,
agent, channel, COALESCE(offer, ''),
calls_made, calls_answered, decision_makers_reached, decision_makers_qualified,
messages, replies, qualified_replies, submissions, leads_responded,
avg_response_time, meetings_booked, leads_booked, show_ups, days_to_discovery,
created_at
FROM prospecting_records`

func prospectingQuery(f filter.Prospecting) (string, []any) {
	var c conds
	c.dateRange(f.StartDate, f.EndDate)
	c.in("agent", f.Agents)
	c.in("channel", f.Channels)
	c.in("offer", f.Offers)
	c.period(f.Year, f.Quarter, f.Month)
	return selectProspecting + c.clause() + orderByRecency, c.args
}

const selectPipeline = `SELECT id, day, year, quarter, month, week,
closer, COALESCE(offer, ''), COALESCE(origin_agent, ''), COALESCE(origin_channel, ''),
discoveries, discovery_no_shows, discovery_rescheduled,
follow_ups, follow_up_no_shows, follow_up_rescheduled,
qas, qa_no_shows, qa_rescheduled,
mqls, sqls, verbal_agreements, origin_mqls, origin_sqls, origin_verbal_agreements,
leads_contacted, calls_answered, leads_booked_today, show_ups,
discovery_attendances, days_to_follow_up, sales_cycle_days,
created_at
FROM pipeline_records`

func pipelineQuery(f filter.Pipeline) (string, []any) {
	var c conds
	c.dateRange(f.StartDate, f.EndDate)
	c.in("closer", f.Closers)
	c.in("offer", f.Offers)
	c.in("origin_agent", f.OriginAgents)
	c.in("origin_channel", f.OriginChannels)
	c.period(f.Year, f.Quarter, f.Month)
	return selectPipeline + c.clause() + orderByRecency, c.args
}

const selectRevenue = `SELECT id, day, year, quarter, month, week,
executive, COALESCE(consultant, ''), COALESCE(closer, ''), COALESCE(market, ''),
COALESCE(offer, ''), COALESCE(payment_mode, ''), COALESCE(channel, ''),
ticket, kind, project_start, project_duration_days,
created_at
FROM revenue_records`

func revenueQuery(f filter.Revenue) (string, []any) {
	var c conds
	c.dateRange(f.StartDate, f.EndDate)
	c.in("executive", f.Executives)
	c.in("offer", f.Offers)
	c.in("market", f.Markets)
	c.in("closer", f.Closers)
	c.in("consultant", f.Consultants)
	c.in("channel", f.Channels)
	c.eq("kind", f.Kind)
	c.period(f.Year, f.Quarter, f.Month)
	return selectRevenue + c.clause() + orderByRecency, c.args
}
