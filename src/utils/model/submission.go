package model

import (
	"database/sql"
	"time"

	"github.com/jackc/pgtype"
)

const TableFormSubmissions = "form_submissions"

// Main record of one checkout. Related tables hang off Id through submission_id.
type Submission struct {
	Id   string `gorm:"primaryKey" json:"id"`
	Type string `json:"type"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`

	TokenName       string `json:"token_name"`
	TokenTicker     string `json:"token_ticker"`
	TokenChain      string `json:"token_chain"`
	TokenDecimals   string `json:"token_decimals"`
	TargetPrice     string `json:"target_price"`
	TreasuryAddress string `json:"treasury_address"`
	IsStablecoin    bool   `json:"is_stablecoin"`

	KycFullName             string         `json:"kyc_full_name"`
	KycIdNumber             string         `json:"kyc_id_number"`
	KycDateOfBirth          sql.NullString `json:"kyc_date_of_birth"`
	KycNationality          string         `json:"kyc_nationality"`
	KycAddress              string         `json:"kyc_address"`
	KycOccupation           string         `json:"kyc_occupation"`
	KycEmployer             string         `json:"kyc_employer"`
	KycIncomeSource         string         `json:"kyc_income_source"`
	KycNetWorth             string         `json:"kyc_net_worth"`
	KycInvestmentExperience string         `json:"kyc_investment_experience"`
	KycRiskTolerance        string         `json:"kyc_risk_tolerance"`
	KycInvestmentObjectives string         `json:"kyc_investment_objectives"`

	CustodianName         string `json:"custodian_name"`
	CustodianContact      string `json:"custodian_contact"`
	CustodianRegistration string `json:"custodian_registration"`
	CustodianAddress      string `json:"custodian_address"`
	CustodianServices     string `json:"custodian_services"`

	IssuerEntityName         string `json:"issuer_entity_name"`
	IssuerJurisdiction       string `json:"issuer_jurisdiction"`
	IssuerContactPerson      string `json:"issuer_contact_person"`
	IssuerContactInfo        string `json:"issuer_contact_info"`
	IssuerAddress            string `json:"issuer_address"`
	IssuerBusinessType       string `json:"issuer_business_type"`
	IssuerRegistrationNumber string `json:"issuer_registration_number"`

	// Set of selected business plan categories, e.g. {"utility":true}
	BusinessPlanType                 pgtype.JSONB `json:"business_plan_type"`
	BusinessPlanGuidelines           string       `json:"business_plan_guidelines"`
	BusinessPlanExecutiveSummary     string       `json:"business_plan_executive_summary"`
	BusinessPlanMarketAnalysis       string       `json:"business_plan_market_analysis"`
	BusinessPlanFinancialProjections string       `json:"business_plan_financial_projections"`

	SavingsPlanGuidelines string `json:"savings_plan_guidelines"`
	PensionPlanGuidelines string `json:"pension_plan_guidelines"`

	FeaturesGuidelines string `json:"features_guidelines"`

	PaymentAmount int64         `json:"payment_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Submission) TableName() string {
	return TableFormSubmissions
}
