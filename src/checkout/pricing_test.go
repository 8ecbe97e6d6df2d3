package checkout

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestPricingSuite(t *testing.T) {
	suite.Run(t, new(PricingSuite))
}

type PricingSuite struct {
	suite.Suite
}

func (self *PricingSuite) total(quote Quote) (out int64) {
	for _, item := range quote.Items {
		out += item.Price
	}
	return
}

func (self *PricingSuite) TestBaseKnightsbridge() {
	quote := ComputeQuote(SubmissionTypeKnightsbridge, &FormState{})
	self.Len(quote.Items, 2)
	self.Equal("Knightsbridge Service", quote.Items[0].Name)
	self.Equal(int64(PriceKnightsbridgeService), quote.Items[0].Price)
	self.Equal("Mint Token", quote.Items[1].Name)
	self.Equal(int64(PriceMintToken), quote.Items[1].Price)
	self.Equal(int64(175), quote.Total)
}

func (self *PricingSuite) TestBaseDecentralized() {
	quote := ComputeQuote(SubmissionTypeDecentralized, &FormState{})
	self.Len(quote.Items, 1)
	self.Equal("Mint Token", quote.Items[0].Name)
	self.Equal(int64(75), quote.Total)
}

func (self *PricingSuite) TestTotalMatchesItems() {
	state := FormState{
		FeaturesEnabled:        true,
		TokenFeatures:          []string{"pausable", "fees", "blacklist"},
		LetterheadEnabled:      true,
		RaiseDocumentEnabled:   true,
		RaiseDocumentRegions:   []string{"usa"},
		WhitePaperPages:        "60",
		WebsitePlanEnabled:     true,
		ExchangeListingEnabled: true,
		ExchangeListings:       []string{"xt", "lbank"},
		LegalDocumentsEnabled:  true,
		LegalDocuments:         []string{"nda", "smartContractAudit"},
	}
	quote := ComputeQuote(SubmissionTypeKnightsbridge, &state)
	self.Equal(self.total(quote), quote.Total)
}

func (self *PricingSuite) TestFeaturesPerSelection() {
	state := FormState{
		FeaturesEnabled: true,
		TokenFeatures:   []string{"revokeOwnership", "ableToMint", "customThing"},
	}
	quote := ComputeQuote(SubmissionTypeDecentralized, &state)
	self.Len(quote.Items, 4)
	self.Equal("Revoke ownership (Features)", quote.Items[1].Name)
	self.Equal("Mintable (Features)", quote.Items[2].Name)
	// Unknown keys fall through with the raw key and the standard price
	self.Equal("customThing (Features)", quote.Items[3].Name)
	self.Equal(int64(PriceFeature), quote.Items[3].Price)
	self.Equal(int64(75+3*75), quote.Total)
}

func (self *PricingSuite) TestFeaturesImplicitOptIn() {
	// Selections without the checkbox still price, so the quote and the
	// saved submission can never disagree
	state := FormState{TokenFeatures: []string{"pausable"}}
	quote := ComputeQuote(SubmissionTypeDecentralized, &state)
	self.Len(quote.Items, 2)
	self.Equal("Pausable (Features)", quote.Items[1].Name)
}

func (self *PricingSuite) TestRaiseDocumentRegions() {
	single := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		RaiseDocumentRegions: []string{"usa"},
	})
	self.Equal("USA (Raise Document)", single.Items[1].Name)
	self.Equal(int64(PriceRaiseDocumentSingle), single.Items[1].Price)

	nonUsa := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		RaiseDocumentRegions: []string{"Non-USA"},
	})
	self.Equal("Non USA (Raise Document)", nonUsa.Items[1].Name)
	self.Equal(int64(PriceRaiseDocumentSingle), nonUsa.Items[1].Price)

	// "both" wins regardless of position and is priced as one package,
	// cheaper than two single regions bought separately
	both := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		RaiseDocumentRegions: []string{"usa", "both"},
	})
	self.Equal("Both (Raise Document)", both.Items[1].Name)
	self.Equal(int64(PriceRaiseDocumentBoth), both.Items[1].Price)
	self.Greater(both.Total, single.Total)
	self.Greater(both.Total, nonUsa.Total)
	self.NotEqual(int64(2*PriceRaiseDocumentSingle), both.Items[1].Price)
}

func (self *PricingSuite) TestWhitePaperTiers() {
	thirty := ComputeQuote(SubmissionTypeDecentralized, &FormState{WhitePaperPages: "30"})
	sixty := ComputeQuote(SubmissionTypeDecentralized, &FormState{WhitePaperPages: "60"})
	self.Equal(int64(PriceWhitePaper30), thirty.Items[1].Price)
	self.Equal(int64(PriceWhitePaper60), sixty.Items[1].Price)
	self.Greater(sixty.Total, thirty.Total)

	// Unrecognized tiers still produce exactly one line at the fallback price
	odd := ComputeQuote(SubmissionTypeDecentralized, &FormState{WhitePaperPages: "90"})
	self.Len(odd.Items, 2)
	self.Equal("90 Pages (White Paper)", odd.Items[1].Name)
	self.Equal(int64(PriceWhitePaperFallback), odd.Items[1].Price)

	// The sentinel tier means no white paper at all
	none := ComputeQuote(SubmissionTypeDecentralized, &FormState{WhitePaperPages: "none"})
	self.Len(none.Items, 1)
}

func (self *PricingSuite) TestExchangeListings() {
	quote := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		ExchangeListings: []string{"xt", "lbank", "etf"},
	})
	self.Len(quote.Items, 4)
	self.Equal("XT (Exchange Listing)", quote.Items[1].Name)
	self.Equal("LBank (Exchange Listing)", quote.Items[2].Name)
	self.Equal("ETF (Exchange Listing)", quote.Items[3].Name)
	self.Equal(int64(75+3*100), quote.Total)
}

func (self *PricingSuite) TestLegalDocumentPrices() {
	quote := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		LegalDocuments: []string{"offeringMemorandum", "smartContractLegalOpinion", "nda", "somethingNew"},
	})
	self.Equal(int64(10000), quote.Items[1].Price)
	self.Equal(int64(1500), quote.Items[2].Price)
	self.Equal(int64(500), quote.Items[3].Price)
	// Unknown documents get the fallback price
	self.Equal(int64(PriceLegalDocFallback), quote.Items[4].Price)
}

func (self *PricingSuite) TestMinimalMintableSubmission() {
	state := FormState{
		ContactEmail:    "a@b.com",
		ContactPhone:    "+1 555",
		TokenName:       "Foo",
		TokenTicker:     "FOO",
		TokenChain:      "ETH",
		TokenDecimals:   "18",
		TargetPrice:     "1",
		TreasuryAddress: "0xabc",
		FeaturesEnabled: true,
		TokenFeatures:   []string{"ableToMint"},
	}
	self.Nil(Validate(&state))

	quote := ComputeQuote(SubmissionTypeDecentralized, &state)
	self.Len(quote.Items, 2)
	self.Equal("Mint Token", quote.Items[0].Name)
	self.Equal("Mintable (Features)", quote.Items[1].Name)
	self.Equal(int64(PriceMintToken+PriceFeature), quote.Total)
}

func (self *PricingSuite) TestLetterheadAndWebsitePlan() {
	quote := ComputeQuote(SubmissionTypeDecentralized, &FormState{
		LetterheadEnabled:  true,
		WebsitePlanEnabled: true,
	})
	self.Len(quote.Items, 3)
	self.Equal(int64(75+1000+10000), quote.Total)
}
