package domain

type LeadMetric struct {
	ID         int `json:"id" db:"id"`
	Amount     int `json:"amount" db:"amount"`
	LeadsCount int `json:"leads_count" db:"leads_count"`
	CategoryID int `json:"category_id" db:"category_id"`
	SourceID   int `json:"source_id" db:"source_id"`
	WeekID     int `json:"week_id" db:"week_id"`
}

type LeadMetricRequest struct {
	Amount     int `json:"amount"`
	LeadsCount int `json:"leads_count"`
	CategoryID int `json:"category_id" validate:"required"`
	SourceID   int `json:"source_id" validate:"required"`
	WeekID     int `json:"week_id" validate:"required"`
}

func (r LeadMetricRequest) ToLeadMetric() *LeadMetric {
	return &LeadMetric{
		Amount:     r.Amount,
		LeadsCount: r.LeadsCount,
		CategoryID: r.CategoryID,
		SourceID:   r.SourceID,
		WeekID:     r.WeekID,
	}
}

// LeadMetricFilters são filtros opcionais combinados com AND
type LeadMetricFilters struct {
	WeekID     *int
	CategoryID *int
	SourceID   *int
}
