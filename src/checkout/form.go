package checkout

import (
	"strings"
)

// Submission flow the form was filled in
type SubmissionType string

const (
	SubmissionTypeKnightsbridge SubmissionType = "Knightsbridge"
	SubmissionTypeDecentralized SubmissionType = "Decentralized"
)

// FormState carries every field of the intake form, exactly as the client
// keeps it. Optional sections have an Enabled flag next to their detail
// fields; selection slices double as an implicit opt-in (see the Selected
// predicates below).
type FormState struct {
	// Contact information
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	// KYC information (Knightsbridge flow)
	KycFullName             string `json:"kycFullName"`
	KycIdNumber             string `json:"kycIdNumber"`
	KycDateOfBirth          string `json:"kycDateOfBirth"`
	KycNationality          string `json:"kycNationality"`
	KycAddress              string `json:"kycAddress"`
	KycOccupation           string `json:"kycOccupation"`
	KycEmployer             string `json:"kycEmployer"`
	KycIncomeSource         string `json:"kycIncomeSource"`
	KycNetWorth             string `json:"kycNetWorth"`
	KycInvestmentExperience string `json:"kycInvestmentExperience"`
	KycRiskTolerance        string `json:"kycRiskTolerance"`
	KycInvestmentObjectives string `json:"kycInvestmentObjectives"`

	// Custodian information (Knightsbridge flow)
	CustodianName         string `json:"custodianName"`
	CustodianContact      string `json:"custodianContact"`
	CustodianRegistration string `json:"custodianRegistration"`
	CustodianAddress      string `json:"custodianAddress"`
	CustodianServices     string `json:"custodianServices"`

	// Issuer information (Knightsbridge flow)
	IssuerEntityName         string `json:"issuerEntityName"`
	IssuerJurisdiction       string `json:"issuerJurisdiction"`
	IssuerContactPerson      string `json:"issuerContactPerson"`
	IssuerContactInfo        string `json:"issuerContactInfo"`
	IssuerAddress            string `json:"issuerAddress"`
	IssuerBusinessType       string `json:"issuerBusinessType"`
	IssuerRegistrationNumber string `json:"issuerRegistrationNumber"`

	// Business plan (Knightsbridge flow)
	BusinessPlanType                 map[string]bool `json:"businessPlanType"`
	BusinessPlanGuidelines           string          `json:"businessPlanGuidelines"`
	BusinessPlanExecutiveSummary     string          `json:"businessPlanExecutiveSummary"`
	BusinessPlanMarketAnalysis       string          `json:"businessPlanMarketAnalysis"`
	BusinessPlanFinancialProjections string          `json:"businessPlanFinancialProjections"`

	// Savings / pension plans (Knightsbridge flow)
	SavingsPlanGuidelines string `json:"savingsPlanGuidelines"`
	PensionPlanGuidelines string `json:"pensionPlanGuidelines"`

	// Token information
	TokenName       string `json:"tokenName"`
	TokenTicker     string `json:"tokenTicker"`
	TokenChain      string `json:"tokenChain"`
	TokenDecimals   string `json:"tokenDecimals"`
	TargetPrice     string `json:"targetPrice"`
	TreasuryAddress string `json:"treasuryAddress"`
	IsStablecoin    bool   `json:"isStablecoin"`

	// Features
	FeaturesEnabled    bool     `json:"featuresEnabled"`
	TokenFeatures      []string `json:"tokenFeatures"`
	FeaturesGuidelines string   `json:"featuresGuidelines"`

	// Letterhead
	LetterheadEnabled    bool   `json:"letterheadEnabled"`
	LetterheadGuidelines string `json:"letterheadGuidelines"`

	// Raise document
	RaiseDocumentEnabled       bool     `json:"raiseDocumentEnabled"`
	RaiseDocumentRegions       []string `json:"raiseDocumentRegions"`
	RaiseDocumentCompany       string   `json:"raiseDocumentCompany"`
	RaiseDocumentContactName   string   `json:"raiseDocumentContactName"`
	RaiseDocumentContactPerson string   `json:"raiseDocumentContactPerson"`
	RaiseDocumentPosition      string   `json:"raiseDocumentPosition"`
	RaiseDocumentEmail         string   `json:"raiseDocumentEmail"`
	RaiseDocumentPhone         string   `json:"raiseDocumentPhone"`
	RaiseDocumentAddress       string   `json:"raiseDocumentAddress"`
	RaiseDocumentWebsite       string   `json:"raiseDocumentWebsite"`

	// White paper
	WhitePaperEnabled    bool   `json:"whitePaperEnabled"`
	WhitePaperPages      string `json:"whitePaperPages"`
	WhitePaperGuidelines string `json:"whitePaperGuidelines"`

	// Website plan
	WebsitePlanEnabled    bool   `json:"websitePlanEnabled"`
	WebsitePlanGuidelines string `json:"websitePlanGuidelines"`

	// Exchange listings
	ExchangeListingEnabled      bool     `json:"exchangeListingEnabled"`
	ExchangeListings            []string `json:"exchangeListings"`
	ExchangeListingsPreferences string   `json:"exchangeListingsPreferences"`

	// Legal documents
	LegalDocumentsEnabled     bool     `json:"legalDocumentsEnabled"`
	LegalDocuments            []string `json:"legalDocuments"`
	LegalDocumentsPreferences string   `json:"legalDocumentsPreferences"`
}

// The page-tier value meaning "no white paper"
const WhitePaperPagesNone = "none"

// Section opt-in predicates. A non-empty selection slice counts as an opt-in
// even when the checkbox wasn't ticked, so pricing, validation and the mapper
// can never disagree about what's enabled. Defined once, used everywhere.

func (self *FormState) FeaturesSelected() bool {
	return self.FeaturesEnabled || len(self.TokenFeatures) > 0
}

func (self *FormState) LetterheadSelected() bool {
	return self.LetterheadEnabled
}

func (self *FormState) RaiseDocumentSelected() bool {
	return self.RaiseDocumentEnabled || len(self.RaiseDocumentRegions) > 0
}

func (self *FormState) WhitePaperSelected() bool {
	pages := strings.TrimSpace(self.WhitePaperPages)
	return pages != "" && pages != WhitePaperPagesNone
}

func (self *FormState) WebsitePlanSelected() bool {
	return self.WebsitePlanEnabled
}

func (self *FormState) ExchangeListingSelected() bool {
	return self.ExchangeListingEnabled || len(self.ExchangeListings) > 0
}

func (self *FormState) LegalDocumentsSelected() bool {
	return self.LegalDocumentsEnabled || len(self.LegalDocuments) > 0
}

// The raise document is priced per selection, "both" wins over single regions
func (self *FormState) RaiseDocumentRegion() string {
	for _, region := range self.RaiseDocumentRegions {
		if region == RaiseDocumentRegionBoth {
			return region
		}
	}
	if len(self.RaiseDocumentRegions) > 0 {
		return self.RaiseDocumentRegions[0]
	}
	return ""
}
