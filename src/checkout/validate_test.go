package checkout

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

type ValidateSuite struct {
	suite.Suite
}

func validState() *FormState {
	return &FormState{
		ContactEmail:    "founder@example.com",
		ContactPhone:    "+1 555 0100",
		TokenName:       "Example",
		TokenTicker:     "EXM",
		TokenChain:      "ethereum",
		TokenDecimals:   "18",
		TargetPrice:     "0.10",
		TreasuryAddress: "0x0000000000000000000000000000000000000001",
	}
}

func (self *ValidateSuite) fields(errs ValidationErrors) (out []string) {
	for _, fieldError := range errs {
		out = append(out, fieldError.Field)
	}
	return
}

func (self *ValidateSuite) TestValidStatePasses() {
	self.Nil(Validate(validState()))
}

func (self *ValidateSuite) TestAllRequiredFieldsReported() {
	errs := Validate(&FormState{})
	fields := self.fields(errs)
	self.ElementsMatch([]string{
		"contactEmail",
		"contactPhone",
		"tokenName",
		"tokenTicker",
		"tokenChain",
		"tokenDecimals",
		"targetPrice",
		"treasuryAddress",
	}, fields)
}

func (self *ValidateSuite) TestEmailShape() {
	state := validState()
	state.ContactEmail = "not-an-email"
	errs := Validate(state)
	self.Len(errs, 1)
	self.Equal("contactEmail", errs[0].Field)
}

func (self *ValidateSuite) TestWhitespaceIsBlank() {
	state := validState()
	state.TokenName = "   "
	errs := Validate(state)
	self.Contains(self.fields(errs), "tokenName")
}

func (self *ValidateSuite) TestFeaturesEnabledRequiresSelection() {
	state := validState()
	state.FeaturesEnabled = true
	errs := Validate(state)
	self.Equal([]string{"tokenFeatures"}, self.fields(errs))

	state.TokenFeatures = []string{"pausable"}
	self.Nil(Validate(state))
}

func (self *ValidateSuite) TestLetterheadRequiresGuidelines() {
	state := validState()
	state.LetterheadEnabled = true
	errs := Validate(state)
	self.Contains(self.fields(errs), "letterheadGuidelines")
}

func (self *ValidateSuite) TestRaiseDocumentRequirements() {
	state := validState()
	state.RaiseDocumentEnabled = true
	errs := Validate(state)
	self.ElementsMatch([]string{
		"raiseDocumentRegions",
		"raiseDocumentCompany",
		"raiseDocumentContactName",
		"raiseDocumentEmail",
	}, self.fields(errs))

	state.RaiseDocumentRegions = []string{"usa"}
	state.RaiseDocumentCompany = "Example Ltd"
	state.RaiseDocumentContactName = "A. Founder"
	state.RaiseDocumentEmail = "legal@example.com"
	self.Nil(Validate(state))
}

func (self *ValidateSuite) TestRaiseDocumentImplicitOptIn() {
	// Regions without the checkbox still trigger the conditional checks
	state := validState()
	state.RaiseDocumentRegions = []string{"both"}
	errs := Validate(state)
	self.Contains(self.fields(errs), "raiseDocumentCompany")
}

func (self *ValidateSuite) TestWhitePaperRequirements() {
	state := validState()
	state.WhitePaperEnabled = true
	errs := Validate(state)
	self.Equal([]string{"whitePaperPages"}, self.fields(errs))

	state.WhitePaperPages = "none"
	errs = Validate(state)
	self.Equal([]string{"whitePaperPages"}, self.fields(errs))

	state.WhitePaperPages = "30"
	errs = Validate(state)
	self.Equal([]string{"whitePaperGuidelines"}, self.fields(errs))

	state.WhitePaperGuidelines = "Standard structure"
	self.Nil(Validate(state))
}

func (self *ValidateSuite) TestWebsitePlanRequiresGuidelines() {
	state := validState()
	state.WebsitePlanEnabled = true
	errs := Validate(state)
	self.Contains(self.fields(errs), "websitePlanGuidelines")
}

func (self *ValidateSuite) TestErrorsAreCollectedNotShortCircuited() {
	state := &FormState{
		ContactEmail:      "bad",
		LetterheadEnabled: true,
		FeaturesEnabled:   true,
	}
	errs := Validate(state)
	self.Greater(len(errs), 8)
	fields := self.fields(errs)
	self.Contains(fields, "contactEmail")
	self.Contains(fields, "letterheadGuidelines")
	self.Contains(fields, "tokenFeatures")
}
