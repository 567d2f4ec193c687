package domain

import (
	"time"
)

// EventClient represents one closed sale tied to a marketing event.
//
// Monetary fields are never NULL in the database: omitted values are stored
// as 0. Percentage fields stay nullable, a nil pointer means "not specified".
type EventClient struct {
	ID                                string    `json:"id"`
	EventID                           string    `json:"event_id"`
	ClientName                        string    `json:"client_name"`
	CloseDate                         time.Time `json:"close_date"`
	AnnuityPremium                    float64   `json:"annuity_premium"`
	AnnuityCommission                 float64   `json:"annuity_commission"`
	AnnuityCommissionPercentage       *float64  `json:"annuity_commission_percentage"`
	LifeInsurancePremium              float64   `json:"life_insurance_premium"`
	LifeInsuranceCommission           float64   `json:"life_insurance_commission"`
	LifeInsuranceCommissionPercentage *float64  `json:"life_insurance_commission_percentage"`
	AUMAmount                         float64   `json:"aum_amount"`
	AUMFeePercentage                  *float64  `json:"aum_fee_percentage"`
	AUMFees                           float64   `json:"aum_fees"`
	FinancialPlanningFee              float64   `json:"financial_planning_fee"`
	Notes                             *string   `json:"notes"`
	CreatedAt                         time.Time `json:"created_at"`
	UpdatedAt                         time.Time `json:"updated_at"`
}

// UpdateEventClientRequest carries a partial update. Nil fields are left
// untouched.
type UpdateEventClientRequest struct {
	ID                                string     `json:"id"`
	ClientName                        *string    `json:"client_name"`
	CloseDate                         *time.Time `json:"close_date"`
	AnnuityPremium                    *float64   `json:"annuity_premium"`
	AnnuityCommission                 *float64   `json:"annuity_commission"`
	AnnuityCommissionPercentage       *float64   `json:"annuity_commission_percentage"`
	LifeInsurancePremium              *float64   `json:"life_insurance_premium"`
	LifeInsuranceCommission           *float64   `json:"life_insurance_commission"`
	LifeInsuranceCommissionPercentage *float64   `json:"life_insurance_commission_percentage"`
	AUMAmount                         *float64   `json:"aum_amount"`
	AUMFeePercentage                  *float64   `json:"aum_fee_percentage"`
	AUMFees                           *float64   `json:"aum_fees"`
	FinancialPlanningFee              *float64   `json:"financial_planning_fee"`
	Notes                             *string    `json:"notes"`
}

// TotalValue is the combined deal value of the client across products.
func (c *EventClient) TotalValue() float64 {
	return c.AnnuityPremium + c.LifeInsurancePremium + c.AUMAmount + c.FinancialPlanningFee
}

// Product type filters accepted by the client listing endpoints.
const (
	ProductTypeAnnuity           = "annuity"
	ProductTypeLife              = "life"
	ProductTypeAUM               = "aum"
	ProductTypeFinancialPlanning = "financial_planning"
)

// ClientFilters narrows GetClientsByUser results. Zero values mean "no
// filter" for every field.
type ClientFilters struct {
	Year        int
	StartDate   *time.Time
	EndDate     *time.Time
	EventType   string
	ProductType string
}
