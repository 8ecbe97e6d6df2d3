package checkout

import (
	"database/sql"
	"strings"

	"github.com/knightsbridge-digital/intake/src/utils/model"
)

// Records is everything one submission writes to the database, the main row
// plus the per-section detail rows
type Records struct {
	Submission model.Submission

	TokenFeatures               []model.TokenFeature
	Letterhead                  *model.LetterheadService
	RaiseDocument               *model.RaiseDocument
	RaiseDocumentRegions        []model.RaiseDocumentRegion
	Whitepaper                  *model.Whitepaper
	WebsitePlan                 *model.WebsitePlan
	ExchangeListings            []model.ExchangeListing
	ExchangeListingsPreferences *model.ExchangeListingsPreferences
	LegalDocuments              []model.LegalDocument
	LegalDocumentPreferences    *model.LegalDocumentPreferences
}

// MapRecords turns a validated form state into database records. Selection
// slices get persisted even when the checkbox was left unticked, while a
// section disabled by its flag leaves no rows behind regardless of any stale
// text still sitting in the state.
func MapRecords(id string, submissionType SubmissionType, state *FormState) (out *Records, err error) {
	quote := ComputeQuote(submissionType, state)

	out = &Records{
		Submission: model.Submission{
			Id:   id,
			Type: string(submissionType),

			ContactEmail: strings.TrimSpace(state.ContactEmail),
			ContactPhone: strings.TrimSpace(state.ContactPhone),

			TokenName:       state.TokenName,
			TokenTicker:     state.TokenTicker,
			TokenChain:      state.TokenChain,
			TokenDecimals:   state.TokenDecimals,
			TargetPrice:     state.TargetPrice,
			TreasuryAddress: state.TreasuryAddress,
			IsStablecoin:    state.IsStablecoin,

			KycFullName:             state.KycFullName,
			KycIdNumber:             state.KycIdNumber,
			KycDateOfBirth:          nullableDate(state.KycDateOfBirth),
			KycNationality:          state.KycNationality,
			KycAddress:              state.KycAddress,
			KycOccupation:           state.KycOccupation,
			KycEmployer:             state.KycEmployer,
			KycIncomeSource:         state.KycIncomeSource,
			KycNetWorth:             state.KycNetWorth,
			KycInvestmentExperience: state.KycInvestmentExperience,
			KycRiskTolerance:        state.KycRiskTolerance,
			KycInvestmentObjectives: state.KycInvestmentObjectives,

			CustodianName:         state.CustodianName,
			CustodianContact:      state.CustodianContact,
			CustodianRegistration: state.CustodianRegistration,
			CustodianAddress:      state.CustodianAddress,
			CustodianServices:     state.CustodianServices,

			IssuerEntityName:         state.IssuerEntityName,
			IssuerJurisdiction:       state.IssuerJurisdiction,
			IssuerContactPerson:      state.IssuerContactPerson,
			IssuerContactInfo:        state.IssuerContactInfo,
			IssuerAddress:            state.IssuerAddress,
			IssuerBusinessType:       state.IssuerBusinessType,
			IssuerRegistrationNumber: state.IssuerRegistrationNumber,

			BusinessPlanGuidelines:           state.BusinessPlanGuidelines,
			BusinessPlanExecutiveSummary:     state.BusinessPlanExecutiveSummary,
			BusinessPlanMarketAnalysis:       state.BusinessPlanMarketAnalysis,
			BusinessPlanFinancialProjections: state.BusinessPlanFinancialProjections,

			SavingsPlanGuidelines: state.SavingsPlanGuidelines,
			PensionPlanGuidelines: state.PensionPlanGuidelines,
			FeaturesGuidelines:    state.FeaturesGuidelines,

			PaymentAmount: quote.Total,
			PaymentStatus: model.PaymentStatusPending,
		},
	}

	businessPlan := state.BusinessPlanType
	if businessPlan == nil {
		businessPlan = map[string]bool{}
	}
	err = out.Submission.BusinessPlanType.Set(businessPlan)
	if err != nil {
		return
	}

	for _, feature := range state.TokenFeatures {
		out.TokenFeatures = append(out.TokenFeatures, model.TokenFeature{
			SubmissionId: id,
			FeatureName:  feature,
		})
	}

	if state.LetterheadEnabled {
		out.Letterhead = &model.LetterheadService{
			SubmissionId: id,
			Enabled:      true,
			Guidelines:   state.LetterheadGuidelines,
		}
	}

	if len(state.RaiseDocumentRegions) > 0 {
		out.RaiseDocument = &model.RaiseDocument{
			SubmissionId:  id,
			Company:       state.RaiseDocumentCompany,
			ContactName:   state.RaiseDocumentContactName,
			ContactPerson: state.RaiseDocumentContactPerson,
			Position:      state.RaiseDocumentPosition,
			Email:         state.RaiseDocumentEmail,
			Phone:         state.RaiseDocumentPhone,
			Address:       state.RaiseDocumentAddress,
			Website:       state.RaiseDocumentWebsite,
		}
		for _, region := range state.RaiseDocumentRegions {
			out.RaiseDocumentRegions = append(out.RaiseDocumentRegions, model.RaiseDocumentRegion{
				SubmissionId: id,
				Region:       region,
			})
		}
	}

	if state.WhitePaperSelected() {
		out.Whitepaper = &model.Whitepaper{
			SubmissionId: id,
			Pages:        state.WhitePaperPages,
			Guidelines:   state.WhitePaperGuidelines,
		}
	}

	if state.WebsitePlanEnabled {
		out.WebsitePlan = &model.WebsitePlan{
			SubmissionId: id,
			Enabled:      true,
			Guidelines:   state.WebsitePlanGuidelines,
		}
	}

	for _, exchange := range state.ExchangeListings {
		out.ExchangeListings = append(out.ExchangeListings, model.ExchangeListing{
			SubmissionId: id,
			ExchangeName: exchange,
		})
	}
	if len(state.ExchangeListings) > 0 && !isBlank(state.ExchangeListingsPreferences) {
		out.ExchangeListingsPreferences = &model.ExchangeListingsPreferences{
			SubmissionId: id,
			Preferences:  state.ExchangeListingsPreferences,
		}
	}

	for _, doc := range state.LegalDocuments {
		out.LegalDocuments = append(out.LegalDocuments, model.LegalDocument{
			SubmissionId: id,
			DocumentType: doc,
		})
	}
	if len(state.LegalDocuments) > 0 && !isBlank(state.LegalDocumentsPreferences) {
		out.LegalDocumentPreferences = &model.LegalDocumentPreferences{
			SubmissionId: id,
			Preferences:  state.LegalDocumentsPreferences,
		}
	}

	return
}

func nullableDate(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
