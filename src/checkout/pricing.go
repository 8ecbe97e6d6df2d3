package checkout

import (
	"fmt"
)

// Prices are whole currency units
const (
	PriceKnightsbridgeService = 100
	PriceMintToken            = 75
	PriceFeature              = 75
	PriceLetterhead           = 1000
	PriceRaiseDocumentSingle  = 10000
	PriceRaiseDocumentBoth    = 18000
	PriceWhitePaper30         = 10000
	PriceWhitePaper60         = 15000
	PriceWhitePaperFallback   = 10000
	PriceWebsitePlan          = 10000
	PriceExchangeListing      = 100
	PriceLegalDocFallback     = 100
)

const (
	RaiseDocumentRegionUsa    = "usa"
	RaiseDocumentRegionNonUsa = "Non-USA"
	RaiseDocumentRegionBoth   = "both"
)

// LineItem is one row of the quote shown at checkout
type LineItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Quote is the full itemization for a form state
type Quote struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
}

var featureLabels = map[string]string{
	"revokeOwnership":   "Revoke ownership",
	"liquidityFee":      "Liquidity Fee",
	"pausable":          "Pausable",
	"fees":              "Fees",
	"deflationary":      "Deflationary",
	"blacklist":         "Blacklist",
	"transactionLimits": "Transaction Limits",
	"superchain":        "Superchain",
	"walletLimits":      "Wallet Limits",
	"marketingFee":      "Marketing Fee",
	"interoperability":  "Interoperability",
	"verifyContract":    "Verify Contract",
	"ableToMint":        "Mintable",
	"ableToBurn":        "Burnable",
	"others":            "Others",
}

var exchangeLabels = map[string]string{
	"xt":    "XT",
	"lbank": "LBank",
	"etf":   "ETF",
}

var legalDocumentPrices = map[string]int64{
	"offeringMemorandum":       10000,
	"smartContractLegalOpinion": 1500,
	"securityTokenOffering":    10000,
	"tokenPurchaseAgreement":   10000,
	"sada":                     10000,
	"nda":                      500,
	"smartContractAudit":       2500,
	"tokenomicsWhitepaper":     500,
	"mutualNda":                500,
}

var legalDocumentLabels = map[string]string{
	"offeringMemorandum":        "Offering Memorandum",
	"smartContractLegalOpinion": "Smart Contract Legal Opinion",
	"securityTokenOffering":     "Security Token Offering",
	"tokenPurchaseAgreement":    "Token Purchase Agreement",
	"sada":                      "SADA",
	"nda":                       "NDA",
	"smartContractAudit":        "Smart Contract Audit",
	"tokenomicsWhitepaper":      "Tokenomics Whitepaper",
	"mutualNda":                 "Mutual NDA",
}

// FeatureLabel returns the display name for a feature key. Unknown keys pass
// through unchanged so a new checkbox on the client never breaks the quote.
func FeatureLabel(key string) string {
	if label, ok := featureLabels[key]; ok {
		return label
	}
	return key
}

func ExchangeLabel(key string) string {
	if label, ok := exchangeLabels[key]; ok {
		return label
	}
	return key
}

func LegalDocumentLabel(key string) string {
	if label, ok := legalDocumentLabels[key]; ok {
		return label
	}
	return key
}

func LegalDocumentPrice(key string) int64 {
	if price, ok := legalDocumentPrices[key]; ok {
		return price
	}
	return PriceLegalDocFallback
}

func regionLabel(region string) string {
	switch region {
	case RaiseDocumentRegionUsa:
		return "USA"
	case RaiseDocumentRegionNonUsa:
		return "Non USA"
	case RaiseDocumentRegionBoth:
		return "Both"
	}
	return region
}

func whitePaperLine(pages string) LineItem {
	switch pages {
	case "30":
		return LineItem{Name: "30 Pages (White Paper)", Price: PriceWhitePaper30}
	case "60":
		return LineItem{Name: "60 Pages (White Paper)", Price: PriceWhitePaper60}
	}
	return LineItem{Name: fmt.Sprintf("%s Pages (White Paper)", pages), Price: PriceWhitePaperFallback}
}

// ComputeQuote itemizes a form state into checkout line items. It is a pure
// function of the state, the same call backs both the quote endpoint and the
// amount persisted with the submission.
func ComputeQuote(submissionType SubmissionType, state *FormState) (out Quote) {
	out.Items = make([]LineItem, 0, 8)

	if submissionType == SubmissionTypeKnightsbridge {
		out.Items = append(out.Items, LineItem{Name: "Knightsbridge Service", Price: PriceKnightsbridgeService})
	}
	out.Items = append(out.Items, LineItem{Name: "Mint Token", Price: PriceMintToken})

	if state.FeaturesSelected() {
		for _, feature := range state.TokenFeatures {
			out.Items = append(out.Items, LineItem{
				Name:  fmt.Sprintf("%s (Features)", FeatureLabel(feature)),
				Price: PriceFeature,
			})
		}
	}

	if state.LetterheadSelected() {
		out.Items = append(out.Items, LineItem{Name: "Letterhead", Price: PriceLetterhead})
	}

	if state.RaiseDocumentSelected() {
		region := state.RaiseDocumentRegion()
		price := int64(PriceRaiseDocumentSingle)
		if region == RaiseDocumentRegionBoth {
			price = PriceRaiseDocumentBoth
		}
		out.Items = append(out.Items, LineItem{
			Name:  fmt.Sprintf("%s (Raise Document)", regionLabel(region)),
			Price: price,
		})
	}

	if state.WhitePaperSelected() {
		out.Items = append(out.Items, whitePaperLine(state.WhitePaperPages))
	}

	if state.WebsitePlanSelected() {
		out.Items = append(out.Items, LineItem{Name: "Website Plan", Price: PriceWebsitePlan})
	}

	if state.ExchangeListingSelected() {
		for _, exchange := range state.ExchangeListings {
			out.Items = append(out.Items, LineItem{
				Name:  fmt.Sprintf("%s (Exchange Listing)", ExchangeLabel(exchange)),
				Price: PriceExchangeListing,
			})
		}
	}

	if state.LegalDocumentsSelected() {
		for _, doc := range state.LegalDocuments {
			out.Items = append(out.Items, LineItem{
				Name:  fmt.Sprintf("%s (Legal Documents)", LegalDocumentLabel(doc)),
				Price: LegalDocumentPrice(doc),
			})
		}
	}

	for _, item := range out.Items {
		out.Total += item.Price
	}
	return
}
