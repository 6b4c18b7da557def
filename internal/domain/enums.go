package domain

// CreditStatus is the backend's verdict for a consulted document.
type CreditStatus string

const (
	CreditStatusRestricted CreditStatus = "RESTRICTED"
	CreditStatusClear      CreditStatus = "CLEAR"
)

// ConsultationStatus records how a submitted consultation ended.
type ConsultationStatus string

const (
	ConsultationStatusSuccess ConsultationStatus = "success"
	ConsultationStatusError   ConsultationStatus = "error"
)
