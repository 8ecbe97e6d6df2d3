package server

import (
	"errors"
	"net/http"

	"github.com/knightsbridge-digital/intake/src/payment"
	. "github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/model"

	"github.com/knightsbridge-digital/intake/src/server/request"
	"github.com/knightsbridge-digital/intake/src/server/response"

	"github.com/gin-gonic/gin"
)

func (self *Server) onCreatePayment(c *gin.Context) {
	var in = new(request.CreatePayment)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse payment request")
		return
	}

	method, err := payment.ParseMethod(in.Method)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Rejected payment request")
		return
	}

	var currency payment.CryptoCurrency
	if method == payment.MethodCrypto {
		currency, err = payment.ParseCryptoCurrency(in.PayCurrency)
		if err != nil {
			LOGE(c, err, http.StatusBadRequest).Error("Rejected payment request")
			return
		}
	}

	session, err := self.orchestrator.CreatePayment(c, in.SubmissionId, method, currency)
	switch {
	case errors.Is(err, payment.ErrSubmissionNotFound):
		LOGE(c, err, http.StatusNotFound).Debug("Payment for unknown submission")
		return
	case errors.Is(err, payment.ErrInvalidTransition):
		LOGE(c, err, http.StatusConflict).Debug("Payment for a finished submission")
		return
	case err != nil:
		LOGE(c, err, http.StatusBadGateway).Error("Failed to create checkout session")
		return
	}

	c.JSON(http.StatusCreated, &response.CreatePayment{
		SubmissionId: session.SubmissionId,
		OrderId:      session.OrderId,
		CheckoutUrl:  session.CheckoutUrl,
	})
}

func (self *Server) onUpdatePaymentStatus(c *gin.Context) {
	var in = new(request.UpdatePaymentStatus)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse status update")
		return
	}

	status, err := model.ParsePaymentStatus(in.Status)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Rejected status update")
		return
	}

	err = self.orchestrator.UpdateStatus(c, in.SubmissionId, status)
	switch {
	case errors.Is(err, payment.ErrSubmissionNotFound):
		LOGE(c, err, http.StatusNotFound).Debug("Status update for unknown submission")
		return
	case errors.Is(err, payment.ErrInvalidTransition):
		LOGE(c, err, http.StatusConflict).Debug("Rejected status transition")
		return
	case err != nil:
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to update payment status")
		return
	}

	c.Status(http.StatusOK)
}
