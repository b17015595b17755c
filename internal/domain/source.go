package domain

type PricingType string

const (
	PricingTypeTotalDivided PricingType = "total_divided"
	PricingTypeFixedPerLead PricingType = "fixed_per_lead"
)

func (p PricingType) IsValid() bool {
	switch p {
	case PricingTypeTotalDivided, PricingTypeFixedPerLead:
		return true
	default:
		return false
	}
}

type Source struct {
	ID          int         `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	PricingType PricingType `json:"pricing_type" db:"pricing_type"`
}

type SourceRequest struct {
	Name        string       `json:"name" validate:"required,max=50"`
	PricingType *PricingType `json:"pricing_type" validate:"omitempty,oneof=total_divided fixed_per_lead"`
}
