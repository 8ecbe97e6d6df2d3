package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError points at one offending form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of problems found in one pass. All fields
// get checked, a client can render every message at once.
type ValidationErrors []FieldError

func (self ValidationErrors) Error() string {
	messages := make([]string, 0, len(self))
	for _, fieldError := range self {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldError.Field, fieldError.Message))
	}
	return strings.Join(messages, "; ")
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate checks a form state before it gets priced and persisted. Returns
// nil when the state is acceptable.
func Validate(state *FormState) ValidationErrors {
	var out ValidationErrors

	require := func(field, value, message string) {
		if isBlank(value) {
			out = append(out, FieldError{Field: field, Message: message})
		}
	}

	if isBlank(state.ContactEmail) {
		out = append(out, FieldError{Field: "contactEmail", Message: "Contact email is required"})
	} else if !emailRegex.MatchString(strings.TrimSpace(state.ContactEmail)) {
		out = append(out, FieldError{Field: "contactEmail", Message: "Contact email is not a valid email address"})
	}
	require("contactPhone", state.ContactPhone, "Contact phone is required")
	require("tokenName", state.TokenName, "Token name is required")
	require("tokenTicker", state.TokenTicker, "Token ticker is required")
	require("tokenChain", state.TokenChain, "Token chain is required")
	require("tokenDecimals", state.TokenDecimals, "Token decimals are required")
	require("targetPrice", state.TargetPrice, "Target price is required")
	require("treasuryAddress", state.TreasuryAddress, "Treasury address is required")

	if state.FeaturesSelected() && len(state.TokenFeatures) == 0 {
		out = append(out, FieldError{Field: "tokenFeatures", Message: "Select at least one token feature"})
	}

	if state.LetterheadSelected() {
		require("letterheadGuidelines", state.LetterheadGuidelines, "Letterhead guidelines are required")
	}

	if state.RaiseDocumentSelected() {
		if len(state.RaiseDocumentRegions) == 0 {
			out = append(out, FieldError{Field: "raiseDocumentRegions", Message: "Select at least one raise document region"})
		}
		require("raiseDocumentCompany", state.RaiseDocumentCompany, "Raise document company is required")
		require("raiseDocumentContactName", state.RaiseDocumentContactName, "Raise document contact name is required")
		require("raiseDocumentEmail", state.RaiseDocumentEmail, "Raise document email is required")
	}

	if state.WhitePaperEnabled && !state.WhitePaperSelected() {
		out = append(out, FieldError{Field: "whitePaperPages", Message: "Select the white paper page count"})
	}
	if state.WhitePaperSelected() {
		require("whitePaperGuidelines", state.WhitePaperGuidelines, "White paper guidelines are required")
	}

	if state.WebsitePlanSelected() {
		require("websitePlanGuidelines", state.WebsitePlanGuidelines, "Website plan guidelines are required")
	}

	if state.ExchangeListingSelected() && len(state.ExchangeListings) == 0 {
		out = append(out, FieldError{Field: "exchangeListings", Message: "Select at least one exchange"})
	}

	if state.LegalDocumentsSelected() && len(state.LegalDocuments) == 0 {
		out = append(out, FieldError{Field: "legalDocuments", Message: "Select at least one legal document"})
	}

	return out
}
