package model

import (
	"database/sql/driver"
	"fmt"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusExpired    PaymentStatus = "expired"
)

func (self *PaymentStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*self = PaymentStatus(v)
	case string:
		*self = PaymentStatus(v)
	default:
		return fmt.Errorf("unsupported payment status type %T", value)
	}
	return nil
}

func (self PaymentStatus) Value() (driver.Value, error) {
	return string(self), nil
}

// Completed, cancelled and expired submissions don't change status anymore
func (self PaymentStatus) IsTerminal() bool {
	switch self {
	case PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusExpired:
		return true
	}
	return false
}

func ParsePaymentStatus(s string) (status PaymentStatus, err error) {
	status = PaymentStatus(s)
	switch status {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted,
		PaymentStatusCancelled, PaymentStatusExpired:
		return
	}
	err = fmt.Errorf("invalid payment status: %s", s)
	return
}
