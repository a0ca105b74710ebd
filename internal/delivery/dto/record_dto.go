package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response DTOs — the health record page is read-only.

type LaboratoryResultResponse struct {
	ID         int64      `json:"id"`
	TestName   string     `json:"test_name"`
	TestDate   string     `json:"test_date"`
	Status     string     `json:"status"`
	Result     string     `json:"result,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

type PrescriptionItemResponse struct {
	Medication   string          `json:"medication"`
	Dosage       string          `json:"dosage,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	QtyDispensed decimal.Decimal `json:"qty_dispensed"`
	Instructions string          `json:"instructions,omitempty"`
}

type PrescriptionResponse struct {
	ID           int64                      `json:"id"`
	PrescribedBy string                     `json:"prescribed_by,omitempty"`
	Diagnosis    string                     `json:"diagnosis,omitempty"`
	Status       string                     `json:"status"`
	Items        []PrescriptionItemResponse `json:"items"`
	CreatedAt    time.Time                  `json:"created_at"`
}

type ReferralResponse struct {
	ID           int64  `json:"id"`
	ReferredTo   string `json:"referred_to"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	ReferralDate string `json:"referral_date"`
	Notes        string `json:"notes,omitempty"`
}

type HealthRecordResponse struct {
	LaboratoryResults []LaboratoryResultResponse `json:"laboratory_results"`
	Prescriptions     []PrescriptionResponse     `json:"prescriptions"`
	Referrals         []ReferralResponse         `json:"referrals"`
}
