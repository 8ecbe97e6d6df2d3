package response

import (
	"encoding/json"
	"time"

	"github.com/knightsbridge-digital/intake/src/checkout"
)

type Document struct {
	FieldName        string `json:"fieldName"`
	OriginalFilename string `json:"originalFilename"`
	FilePath         string `json:"filePath"`
	FileSize         int64  `json:"fileSize"`
	MimeType         string `json:"mimeType"`
	Url              string `json:"url"`
}

type Letterhead struct {
	Enabled    bool   `json:"enabled"`
	Guidelines string `json:"guidelines"`
}

type Whitepaper struct {
	Pages      string `json:"pages"`
	Guidelines string `json:"guidelines"`
}

type WebsitePlan struct {
	Enabled    bool   `json:"enabled"`
	Guidelines string `json:"guidelines"`
}

type Submission struct {
	Id   string `json:"id"`
	Type string `json:"type"`

	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	TokenName       string `json:"tokenName"`
	TokenTicker     string `json:"tokenTicker"`
	TokenChain      string `json:"tokenChain"`
	TokenDecimals   string `json:"tokenDecimals"`
	TargetPrice     string `json:"targetPrice"`
	TreasuryAddress string `json:"treasuryAddress"`
	IsStablecoin    bool   `json:"isStablecoin"`

	KycFullName    string `json:"kycFullName"`
	KycIdNumber    string `json:"kycIdNumber"`
	KycDateOfBirth string `json:"kycDateOfBirth"`
	KycNationality string `json:"kycNationality"`

	CustodianName    string `json:"custodianName"`
	IssuerEntityName string `json:"issuerEntityName"`

	BusinessPlanType       json.RawMessage `json:"businessPlanType"`
	BusinessPlanGuidelines string          `json:"businessPlanGuidelines"`

	Features       []string `json:"features"`
	Regions        []string `json:"regions"`
	Exchanges      []string `json:"exchanges"`
	LegalDocuments []string `json:"legalDocuments"`

	Letterhead  *Letterhead  `json:"letterhead,omitempty"`
	Whitepaper  *Whitepaper  `json:"whitepaper,omitempty"`
	WebsitePlan *WebsitePlan `json:"websitePlan,omitempty"`

	Documents []Document `json:"documents"`

	PaymentAmount int64  `json:"paymentAmount"`
	PaymentStatus string `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GetSubmissions struct {
	Submissions []Submission `json:"submissions"`
}

func SubmissionsToResponse(summaries []checkout.SubmissionSummary, publicUrl func(path string) string) *GetSubmissions {
	out := make([]Submission, len(summaries))
	for i, summary := range summaries {
		documents := make([]Document, len(summary.Documents))
		for j, document := range summary.Documents {
			documents[j] = Document{
				FieldName:        document.FieldName,
				OriginalFilename: document.OriginalFilename,
				FilePath:         document.FilePath,
				FileSize:         document.FileSize,
				MimeType:         document.MimeType,
				Url:              publicUrl(document.FilePath),
			}
		}

		out[i] = Submission{
			Id:   summary.Id,
			Type: summary.Type,

			ContactEmail: summary.ContactEmail,
			ContactPhone: summary.ContactPhone,

			TokenName:       summary.TokenName,
			TokenTicker:     summary.TokenTicker,
			TokenChain:      summary.TokenChain,
			TokenDecimals:   summary.TokenDecimals,
			TargetPrice:     summary.TargetPrice,
			TreasuryAddress: summary.TreasuryAddress,
			IsStablecoin:    summary.IsStablecoin,

			KycFullName:    summary.KycFullName,
			KycIdNumber:    summary.KycIdNumber,
			KycDateOfBirth: summary.KycDateOfBirth.String,
			KycNationality: summary.KycNationality,

			CustodianName:    summary.CustodianName,
			IssuerEntityName: summary.IssuerEntityName,

			BusinessPlanType:       summary.BusinessPlanType.Bytes,
			BusinessPlanGuidelines: summary.BusinessPlanGuidelines,

			Features:       summary.Features,
			Regions:        summary.Regions,
			Exchanges:      summary.Exchanges,
			LegalDocuments: summary.LegalDocuments,

			Documents: documents,

			PaymentAmount: summary.PaymentAmount,
			PaymentStatus: string(summary.PaymentStatus),

			CreatedAt: summary.CreatedAt,
			UpdatedAt: summary.UpdatedAt,
		}

		if summary.Letterhead != nil {
			out[i].Letterhead = &Letterhead{
				Enabled:    summary.Letterhead.Enabled,
				Guidelines: summary.Letterhead.Guidelines,
			}
		}
		if summary.Whitepaper != nil {
			out[i].Whitepaper = &Whitepaper{
				Pages:      summary.Whitepaper.Pages,
				Guidelines: summary.Whitepaper.Guidelines,
			}
		}
		if summary.WebsitePlan != nil {
			out[i].WebsitePlan = &WebsitePlan{
				Enabled:    summary.WebsitePlan.Enabled,
				Guidelines: summary.WebsitePlan.Guidelines,
			}
		}
	}

	return &GetSubmissions{Submissions: out}
}
