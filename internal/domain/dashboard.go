package domain

type CategorySummary struct {
	CategoryID   int     `json:"category_id" db:"category_id"`
	CategoryName string  `json:"category_name" db:"category_name"`
	TotalLeads   int64   `json:"total_leads" db:"total_leads"`
	TotalAmount  float64 `json:"total_amount" db:"total_amount"`
}

type SourceSummary struct {
	SourceID    int     `json:"source_id" db:"source_id"`
	SourceName  string  `json:"source_name" db:"source_name"`
	TotalLeads  int64   `json:"total_leads" db:"total_leads"`
	TotalAmount float64 `json:"total_amount" db:"total_amount"`
}

type LeadOverview struct {
	ByCategory []*CategorySummary `json:"by_category"`
	BySource   []*SourceSummary   `json:"by_source"`
}

// WeeklyAggregate é uma linha agregada por semana vinda do banco
type WeeklyAggregate struct {
	WeekID     int   `db:"week_id"`
	StartDate  Date  `db:"start_date"`
	EndDate    Date  `db:"end_date"`
	Amount     int64 `db:"amount"`
	LeadsCount int64 `db:"leads_count"`
}

type WeeklyStats struct {
	ID           int      `json:"id"`
	LeadMetricID *int     `json:"lead_metric_id"`
	SourceID     *int     `json:"source_id"`
	CategoryID   *int     `json:"category_id"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	LeadsCount   int64    `json:"leads_count"`
	Amount       int64    `json:"amount"`
	LeadCost     *float64 `json:"lead_cost"`
}

type LeadStatsSummary struct {
	TotalLeads  int64          `json:"total_leads"`
	TotalAmount int64          `json:"total_amount"`
	LeadCost    *float64       `json:"lead_cost"`
	WeeklyStats []*WeeklyStats `json:"weekly_stats"`
}

type StatsFilters struct {
	FromDate *Date
	ToDate   *Date
}

// LeadMetricDetail é uma métrica com categoria, fonte e semana carregadas
type LeadMetricDetail struct {
	LeadMetricID  int    `db:"lead_metric_id"`
	Amount        int    `db:"amount"`
	LeadsCount    int    `db:"leads_count"`
	CategoryID    int    `db:"category_id"`
	CategoryName  string `db:"category_name"`
	SourceID      int    `db:"source_id"`
	SourceName    string `db:"source_name"`
	WeekID        int    `db:"week_id"`
	WeekStartDate Date   `db:"week_start_date"`
	WeekEndDate   Date   `db:"week_end_date"`
}

type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type WeekRef struct {
	ID        int    `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type LeadMetricItem struct {
	LeadMetricID int      `json:"lead_metric_id"`
	Amount       int      `json:"amount"`
	LeadsCount   int      `json:"leads_count"`
	Category     NamedRef `json:"category"`
	Source       NamedRef `json:"source"`
	Week         WeekRef  `json:"week"`
}

type LeadMetricsByWeek struct {
	StartDate Date              `json:"start_date"`
	EndDate   Date              `json:"end_date"`
	Metrics   []*LeadMetricItem `json:"metrics"`
}
