package models

import "time"

// ProspectingRecord is one day of outbound activity for one agent in one
// acquisition context. Calendar fields are precomputed at write time and
// used only as filter/group dimensions.
type ProspectingRecord struct {
	ID      string
	Day     time.Time
	Year    int
	Quarter string
	Month   string
	Week    string

	Agent   string
	Channel string
	Offer   string

	CallsMade               int
	CallsAnswered           int
	DecisionMakersReached   int
	DecisionMakersQualified int
	Messages                int
	Replies                 int
	QualifiedReplies        int
	Submissions             int
	LeadsResponded          int
	AvgResponseTime         *float64 // nullable, excluded from averages when absent
	MeetingsBooked          int
	LeadsBooked             int
	ShowUps                 int
	DaysToDiscovery         int

	CreatedAt time.Time
}

// PipelineRecord is one day of closer-stage activity. Origin fields are
// propagated from the prospecting domain at hand-off.
type PipelineRecord struct {
	ID      string
	Day     time.Time
	Year    int
	Quarter string
	Month   string
	Week    string

	Closer        string
	Offer         string
	OriginAgent   string
	OriginChannel string

	Discoveries          int
	DiscoveryNoShows     int
	DiscoveryRescheduled int
	FollowUps            int
	FollowUpNoShows      int
	FollowUpRescheduled  int
	QAs                  int
	QANoShows            int
	QARescheduled        int

	MQLs             int
	SQLs             int
	VerbalAgreements int
	// Origin-attributed sub-counts credited back to the prospecting agent.
	OriginMQLs             int
	OriginSQLs             int
	OriginVerbalAgreements int

	LeadsContacted       int
	CallsAnswered        int
	LeadsBookedToday     int
	ShowUps              int
	DiscoveryAttendances int
	DaysToFollowUp       int
	SalesCycleDays       int

	CreatedAt time.Time
}

// RevenueRecord is one closed project or cost entry. Kind "cost" rows are
// excluded from every revenue aggregation.
type RevenueRecord struct {
	ID      string
	Day     time.Time
	Year    int
	Quarter string
	Month   string
	Week    string

	Executive   string
	Consultant  string
	Closer      string
	Market      string
	Offer       string
	PaymentMode string
	Channel     string

	Ticket              *float64 // nullable deal value
	Kind                string   // "project" or "cost"
	ProjectStart        *time.Time
	ProjectDurationDays *int

	CreatedAt time.Time
}

const (
	KindProject = "project"
	KindCost    = "cost"
)

// View models below are read-only snapshots recomputed per query.

type ProspectingKPIs struct {
	CallsMade               int     `json:"calls_made"`
	CallsAnswered           int     `json:"calls_answered"`
	DecisionMakersReached   int     `json:"decision_makers_reached"`
	DecisionMakersQualified int     `json:"decision_makers_qualified"`
	Messages                int     `json:"messages"`
	Replies                 int     `json:"replies"`
	QualifiedReplies        int     `json:"qualified_replies"`
	Submissions             int     `json:"submissions"`
	LeadsResponded          int     `json:"leads_responded"`
	MeetingsBooked          int     `json:"meetings_booked"`
	LeadsBooked             int     `json:"leads_booked"`
	ShowUps                 int     `json:"show_ups"`
	AnswerRate              float64 `json:"answer_rate"`
	ShowUpRate              float64 `json:"show_up_rate"`
	ConversionRate          float64 `json:"conversion_rate"`
	AvgResponseTime         float64 `json:"avg_response_time"`
	AvgDaysToDiscovery      float64 `json:"avg_days_to_discovery"`
}

// AgentSummary's show-up rate divides by leads booked, unlike the global
// KPI which divides by meetings booked. The difference is intentional.
type AgentSummary struct {
	Agent          string  `json:"agent"`
	CallsMade      int     `json:"calls_made"`
	CallsAnswered  int     `json:"calls_answered"`
	MeetingsBooked int     `json:"meetings_booked"`
	ShowUps        int     `json:"show_ups"`
	Submissions    int     `json:"submissions"`
	LeadsBooked    int     `json:"leads_booked"`
	AnswerRate     float64 `json:"answer_rate"`
	ShowUpRate     float64 `json:"show_up_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

type ChannelSummary struct {
	Channel        string  `json:"channel"`
	CallsMade      int     `json:"calls_made"`
	CallsAnswered  int     `json:"calls_answered"`
	Messages       int     `json:"messages"`
	Replies        int     `json:"replies"`
	Submissions    int     `json:"submissions"`
	MeetingsBooked int     `json:"meetings_booked"`
	ShowUps        int     `json:"show_ups"`
	AnswerRate     float64 `json:"answer_rate"`
	ResponseRate   float64 `json:"response_rate"`
	ShowUpRate     float64 `json:"show_up_rate"`
}

type DaySummary struct {
	Day            string `json:"day"`
	CallsMade      int    `json:"calls_made"`
	MeetingsBooked int    `json:"meetings_booked"`
	ShowUps        int    `json:"show_ups"`
	Submissions    int    `json:"submissions"`
}

// ProspectingFunnel stages are independent sums; a later stage is never
// clamped to an earlier one even when the source data is inconsistent.
type ProspectingFunnel struct {
	Outreach    int `json:"outreach"`
	Responses   int `json:"responses"`
	Submissions int `json:"submissions"`
	Bookings    int `json:"bookings"`
	ShowUps     int `json:"show_ups"`
}

type AdvancedMetrics struct {
	OverallEfficiency float64 `json:"overall_efficiency"`
	LeadQuality       float64 `json:"lead_quality"`
	FunnelEfficiency  float64 `json:"funnel_efficiency"`
}

type ROI struct {
	Revenue           float64 `json:"revenue"`
	Cost              float64 `json:"cost"`
	ROI               float64 `json:"roi"`
	CostPerLead       float64 `json:"cost_per_lead"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

type ProspectingOptions struct {
	Agents   []string `json:"agents"`
	Channels []string `json:"channels"`
	Offers   []string `json:"offers"`
	Years    []int    `json:"years"`
	Quarters []string `json:"quarters"`
	Months   []string `json:"months"`
}

type PipelineKPIs struct {
	Discoveries          int `json:"discoveries"`
	DiscoveryNoShows     int `json:"discovery_no_shows"`
	DiscoveryRescheduled int `json:"discovery_rescheduled"`
	FollowUps            int `json:"follow_ups"`
	FollowUpNoShows      int `json:"follow_up_no_shows"`
	FollowUpRescheduled  int `json:"follow_up_rescheduled"`
	QAs                  int `json:"qas"`
	QANoShows            int `json:"qa_no_shows"`
	QARescheduled        int `json:"qa_rescheduled"`

	MQLs                   int `json:"mqls"`
	SQLs                   int `json:"sqls"`
	VerbalAgreements       int `json:"verbal_agreements"`
	ShowUps                int `json:"show_ups"`
	LeadsBookedToday       int `json:"leads_booked_today"`
	OriginMQLs             int `json:"origin_mqls"`
	OriginSQLs             int `json:"origin_sqls"`
	OriginVerbalAgreements int `json:"origin_verbal_agreements"`

	DiscoveryShowUpRate float64 `json:"discovery_show_up_rate"`
	FollowUpShowUpRate  float64 `json:"follow_up_show_up_rate"`
	QAShowUpRate        float64 `json:"qa_show_up_rate"`
	MQLToSQLRate        float64 `json:"mql_to_sql_rate"`
	SQLToVerbalRate     float64 `json:"sql_to_verbal_rate"`
}

type CloserSummary struct {
	Closer           string `json:"closer"`
	Discoveries      int    `json:"discoveries"`
	FollowUps        int    `json:"follow_ups"`
	QAs              int    `json:"qas"`
	MQLs             int    `json:"mqls"`
	SQLs             int    `json:"sqls"`
	VerbalAgreements int    `json:"verbal_agreements"`
	NoShows          int    `json:"no_shows"`
}

type OriginSummary struct {
	Agent            string `json:"agent"`
	Channel          string `json:"channel"`
	MQLs             int    `json:"mqls"`
	SQLs             int    `json:"sqls"`
	VerbalAgreements int    `json:"verbal_agreements"`
}

type PipelineFunnel struct {
	MQLs             int     `json:"mqls"`
	SQLs             int     `json:"sqls"`
	VerbalAgreements int     `json:"verbal_agreements"`
	MQLToSQLRate     float64 `json:"mql_to_sql_rate"`
	SQLToVerbalRate  float64 `json:"sql_to_verbal_rate"`
}

type PipelineOptions struct {
	Closers        []string `json:"closers"`
	Offers         []string `json:"offers"`
	OriginAgents   []string `json:"origin_agents"`
	OriginChannels []string `json:"origin_channels"`
	Years          []int    `json:"years"`
	Quarters       []string `json:"quarters"`
	Months         []string `json:"months"`
}

type RevenueKPIs struct {
	Projects  int     `json:"projects"`
	Revenue   float64 `json:"revenue"`
	AvgTicket float64 `json:"avg_ticket"`
}

// RevenueGroup is one bucket of a revenue breakdown (by closer, consultant,
// market, offer, payment mode or channel).
type RevenueGroup struct {
	Key      string  `json:"key"`
	Projects int     `json:"projects"`
	Revenue  float64 `json:"revenue"`
}

type MonthlyRevenue struct {
	Year     int     `json:"year"`
	Month    string  `json:"month"`
	Projects int     `json:"projects"`
	Revenue  float64 `json:"revenue"`
}

type RevenueOptions struct {
	Executives  []string `json:"executives"`
	Offers      []string `json:"offers"`
	Markets     []string `json:"markets"`
	Closers     []string `json:"closers"`
	Consultants []string `json:"consultants"`
	Channels    []string `json:"channels"`
	Years       []int    `json:"years"`
	Quarters    []string `json:"quarters"`
	Months      []string `json:"months"`
}

// WeeklySummary merges de-duplicated pipeline and prospecting rows into one
// calendar-week bucket.
type WeeklySummary struct {
	Week                 string `json:"week"`
	Bookings             int    `json:"bookings"`
	LeadsBooked          int    `json:"leads_booked"`
	ShowUps              int    `json:"show_ups"`
	Discoveries          int    `json:"discoveries"`
	DiscoveryAttendances int    `json:"discovery_attendances"`
	NoShows              int    `json:"no_shows"`
	Rescheduled          int    `json:"rescheduled"`
	FollowUps            int    `json:"follow_ups"`
	QAs                  int    `json:"qas"`
	MQLs                 int    `json:"mqls"`
	SQLs                 int    `json:"sqls"`
	VerbalAgreements     int    `json:"verbal_agreements"`
}

type AgentObjectives struct {
	Agent            string `json:"agent"`
	Calls            int    `json:"calls"`
	ColdCallBookings int    `json:"cold_call_bookings"`
	OtherBookings    int    `json:"other_bookings"`
	MQLs             int    `json:"mqls"`
}

type MonthlyObjectives struct {
	Calls            int               `json:"calls"`
	ColdCallBookings int               `json:"cold_call_bookings"`
	OtherBookings    int               `json:"other_bookings"`
	MQLs             int               `json:"mqls"`
	Agents           []AgentObjectives `json:"agents"`
}
