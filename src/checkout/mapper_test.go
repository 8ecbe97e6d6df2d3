package checkout

import (
	"testing"

	"github.com/knightsbridge-digital/intake/src/utils/model"

	"github.com/stretchr/testify/suite"
)

func TestMapperSuite(t *testing.T) {
	suite.Run(t, new(MapperSuite))
}

type MapperSuite struct {
	suite.Suite
}

func (self *MapperSuite) TestMainRow() {
	state := validState()
	state.KycFullName = "A. Founder"
	state.IsStablecoin = true
	records, err := MapRecords("sub-1", SubmissionTypeKnightsbridge, state)
	self.NoError(err)

	self.Equal("sub-1", records.Submission.Id)
	self.Equal("Knightsbridge", records.Submission.Type)
	self.Equal("founder@example.com", records.Submission.ContactEmail)
	self.True(records.Submission.IsStablecoin)
	self.Equal(model.PaymentStatusPending, records.Submission.PaymentStatus)
	self.Equal(int64(175), records.Submission.PaymentAmount)
}

func (self *MapperSuite) TestAmountMatchesQuote() {
	state := validState()
	state.TokenFeatures = []string{"pausable", "fees"}
	state.WhitePaperPages = "60"
	state.WhitePaperGuidelines = "Standard"
	records, err := MapRecords("sub-2", SubmissionTypeDecentralized, state)
	self.NoError(err)

	quote := ComputeQuote(SubmissionTypeDecentralized, state)
	self.Equal(quote.Total, records.Submission.PaymentAmount)
}

func (self *MapperSuite) TestEmptyDateOfBirthIsNull() {
	records, err := MapRecords("sub-3", SubmissionTypeDecentralized, validState())
	self.NoError(err)
	self.False(records.Submission.KycDateOfBirth.Valid)

	state := validState()
	state.KycDateOfBirth = "1990-01-02"
	records, err = MapRecords("sub-4", SubmissionTypeKnightsbridge, state)
	self.NoError(err)
	self.True(records.Submission.KycDateOfBirth.Valid)
	self.Equal("1990-01-02", records.Submission.KycDateOfBirth.String)
}

func (self *MapperSuite) TestBusinessPlanTypeJson() {
	state := validState()
	state.BusinessPlanType = map[string]bool{"utility": true, "security": false}
	records, err := MapRecords("sub-5", SubmissionTypeKnightsbridge, state)
	self.NoError(err)

	var decoded map[string]bool
	self.NoError(records.Submission.BusinessPlanType.AssignTo(&decoded))
	self.Equal(state.BusinessPlanType, decoded)
}

func (self *MapperSuite) TestDetailRowsFollowData() {
	state := validState()
	state.TokenFeatures = []string{"pausable", "blacklist"}
	state.RaiseDocumentRegions = []string{"usa", "both"}
	state.RaiseDocumentCompany = "Example Ltd"
	state.ExchangeListings = []string{"xt"}
	state.ExchangeListingsPreferences = "fast listing please"
	state.LegalDocuments = []string{"nda"}

	records, err := MapRecords("sub-6", SubmissionTypeDecentralized, state)
	self.NoError(err)

	self.Len(records.TokenFeatures, 2)
	self.Equal("sub-6", records.TokenFeatures[0].SubmissionId)
	self.Require().NotNil(records.RaiseDocument)
	self.Equal("Example Ltd", records.RaiseDocument.Company)
	self.Len(records.RaiseDocumentRegions, 2)
	self.Len(records.ExchangeListings, 1)
	self.Require().NotNil(records.ExchangeListingsPreferences)
	self.Equal("fast listing please", records.ExchangeListingsPreferences.Preferences)
	self.Len(records.LegalDocuments, 1)
	self.Nil(records.LegalDocumentPreferences)
}

func (self *MapperSuite) TestDisabledSectionsLeaveNoRows() {
	records, err := MapRecords("sub-7", SubmissionTypeDecentralized, validState())
	self.NoError(err)

	self.Empty(records.TokenFeatures)
	self.Nil(records.Letterhead)
	self.Nil(records.RaiseDocument)
	self.Empty(records.RaiseDocumentRegions)
	self.Nil(records.Whitepaper)
	self.Nil(records.WebsitePlan)
	self.Empty(records.ExchangeListings)
	self.Empty(records.LegalDocuments)
}

func (self *MapperSuite) TestDisabledLetterheadDropsStaleGuidelines() {
	// Guidelines typed before the section got unticked must not come back
	state := validState()
	state.LetterheadEnabled = false
	state.LetterheadGuidelines = "gold trim"
	records, err := MapRecords("sub-8", SubmissionTypeDecentralized, state)
	self.NoError(err)
	self.Nil(records.Letterhead)

	state.LetterheadEnabled = true
	records, err = MapRecords("sub-8", SubmissionTypeDecentralized, state)
	self.NoError(err)
	self.Require().NotNil(records.Letterhead)
	self.Equal("gold trim", records.Letterhead.Guidelines)
}

func (self *MapperSuite) TestWhitepaperSentinelSkipped() {
	state := validState()
	state.WhitePaperPages = "none"
	records, err := MapRecords("sub-9", SubmissionTypeDecentralized, state)
	self.NoError(err)
	self.Nil(records.Whitepaper)
}
