package domain

type Week struct {
	ID        int  `json:"id" db:"id"`
	StartDate Date `json:"start_date" db:"start_date"`
	EndDate   Date `json:"end_date" db:"end_date"`
}

type WeekRequest struct {
	StartDate *Date `json:"start_date" validate:"required"`
	EndDate   *Date `json:"end_date" validate:"required"`
}

// SourceInWeek é uma fonte com ao menos uma métrica registrada na semana
type SourceInWeek struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CategoryInWeekAndSource traz os números de uma categoria para uma semana e fonte
type CategoryInWeekAndSource struct {
	ID         int      `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	Amount     int64    `json:"amount" db:"amount"`
	LeadsCount int64    `json:"leads_count" db:"leads_count"`
	LeadCost   *float64 `json:"lead_cost" db:"-"`
}
