package server

import (
	"net/http"
	"strings"

	"github.com/knightsbridge-digital/intake/src/checkout"
	. "github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/model"

	"github.com/knightsbridge-digital/intake/src/server/request"
	"github.com/knightsbridge-digital/intake/src/server/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

func parseSubmissionType(s string) checkout.SubmissionType {
	if s == string(checkout.SubmissionTypeKnightsbridge) {
		return checkout.SubmissionTypeKnightsbridge
	}
	return checkout.SubmissionTypeDecentralized
}

func (self *Server) onGetQuote(c *gin.Context) {
	var in = new(request.GetQuote)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse quote request")
		return
	}

	quote := checkout.ComputeQuote(parseSubmissionType(in.Type), &in.Form)
	self.monitor.GetReport().Checkout.State.QuotesComputed.Inc()

	c.JSON(http.StatusOK, &quote)
}

func (self *Server) onSaveSubmission(c *gin.Context) {
	var in = new(request.SaveSubmission)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse submission request")
		return
	}

	if errs := checkout.Validate(&in.Form); errs != nil {
		self.monitor.GetReport().Checkout.State.ValidationRejected.Inc()
		LOG(c).WithField("count", len(errs)).Debug("Rejected invalid submission")
		c.JSON(http.StatusUnprocessableEntity, &response.ValidationFailure{Errors: errs})
		return
	}

	submissionType := parseSubmissionType(in.Type)
	id := xid.New().String()

	records, err := checkout.MapRecords(id, submissionType, &in.Form)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to map submission")
		return
	}

	err = self.store.SaveSubmission(c, records)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to save submission")
		return
	}

	// Metadata of already uploaded files, saved best-effort in the background
	if len(in.Documents) > 0 {
		documents := make([]model.UploadedDocument, len(in.Documents))
		for i, document := range in.Documents {
			documents[i] = model.UploadedDocument{
				SubmissionId:     id,
				FieldName:        document.FieldName,
				OriginalFilename: document.OriginalFilename,
				FilePath:         document.FilePath,
				FileSize:         document.FileSize,
				MimeType:         document.MimeType,
			}
			if documents[i].OriginalFilename == "" {
				documents[i].OriginalFilename = "unknown"
			}
			if documents[i].MimeType == "" {
				documents[i].MimeType = "application/octet-stream"
			}
		}
		self.store.SaveUploadedDocuments(documents)
	}

	LOG(c).WithField("id", id).WithField("type", submissionType).Info("Saved submission")

	c.JSON(http.StatusCreated, &response.SaveSubmission{
		SubmissionId: id,
		Quote:        checkout.ComputeQuote(submissionType, &in.Form),
	})
}

func (self *Server) onContactMessage(c *gin.Context) {
	var in = new(request.ContactMessage)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse contact request")
		return
	}

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Message) == "" {
		LOGE(c, nil, http.StatusBadRequest).Debug("Rejected incomplete contact message")
		return
	}

	err = self.store.SaveContactMessage(c, &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to save contact message")
		return
	}

	c.Status(http.StatusCreated)
}
