package report

import (
	"go.uber.org/atomic"
)

type PaymentErrors struct {
	CardProvider      atomic.Int64 `json:"card_provider"`
	CryptoProvider    atomic.Int64 `json:"crypto_provider"`
	DbStatusUpdate    atomic.Int64 `json:"db_status_update"`
	DbExpirySweep     atomic.Int64 `json:"db_expiry_sweep"`
	InvalidTransition atomic.Int64 `json:"invalid_transition"`
}

type PaymentState struct {
	PaymentsCreated    atomic.Uint64 `json:"payments_created"`
	StatusUpdates      atomic.Uint64 `json:"status_updates"`
	SubmissionsExpired atomic.Uint64 `json:"submissions_expired"`
	LastSweepTimestamp atomic.Int64  `json:"last_sweep_timestamp"`
}

type PaymentReport struct {
	State  PaymentState  `json:"state"`
	Errors PaymentErrors `json:"errors"`
}
