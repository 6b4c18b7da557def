package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonInfo holds the identification section of a credit report.
type PersonInfo struct {
	Name                 string `json:"name"`
	Document             string `json:"document"`
	BirthDate            string `json:"birthDate"`
	RevenueStatus        string `json:"revenueStatus"`
	MotherName           string `json:"motherName"`
	Gender               string `json:"gender"`
	Email                string `json:"email"`
	MainEconomicActivity string `json:"mainEconomicActivity"`
}

// FinancialSummary aggregates totals across the report sections.
type FinancialSummary struct {
	TotalDebts    int `json:"totalDebts"`
	TotalProtests int `json:"totalProtests"`
	TotalQueries  int `json:"totalQueries"`
	TotalCadin    int `json:"totalCadin,omitempty"`
	TotalCcf      int `json:"totalCcf,omitempty"`
}

// Debt is a single outstanding debt entry.
type Debt struct {
	Value    string `json:"value"`
	Contract string `json:"contract"`
	Origin   string `json:"origin"`
	Date     string `json:"date"`
}

// Protest is a notary protest entry.
type Protest struct {
	Value  string `json:"value"`
	Notary string `json:"notary"`
	Date   string `json:"date"`
}

// Query records one prior consultation of the document by a third party.
type Query struct {
	Date   string `json:"date"`
	Entity string `json:"entity"`
}

// CadinEntry is a federal debt registry record.
type CadinEntry struct {
	Literal string `json:"literal"`
	Value   string `json:"value"`
	Date    string `json:"date"`
}

// CcfEntry records bad checks (cheques sem fundo).
type CcfEntry struct {
	Quantity int    `json:"quantity"`
	Origin   string `json:"origin"`
	Date     string `json:"date"`
}

// ContumaciaEntry flags habitual non-payment behavior (corporate reports only).
type ContumaciaEntry struct {
	Literal  string `json:"literal"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// CreditReport is the standard report returned by the assess-cpf endpoint.
type CreditReport struct {
	Protocol         string           `json:"protocol"`
	Status           CreditStatus     `json:"status"`
	Person           PersonInfo       `json:"person"`
	FinancialSummary FinancialSummary `json:"financialSummary"`
	Debts            []Debt           `json:"debts"`
	Protests         []Protest        `json:"protests"`
	Queries          []Query          `json:"queries"`
}

// PremiumCreditReport extends the standard report with federal registries.
type PremiumCreditReport struct {
	CreditReport
	Cadin []CadinEntry `json:"cadin"`
	Ccf   []CcfEntry   `json:"ccf"`
}

// CorporateCreditReport adds the habitual-bad-payer section on top of premium.
type CorporateCreditReport struct {
	PremiumCreditReport
	Contumacia []ContumaciaEntry `json:"contumacia"`
}

// Consultation is one recorded consultation submission.
type Consultation struct {
	ID             uuid.UUID          `db:"id" json:"id"`
	Slug           string             `db:"slug" json:"slug"`
	DocumentType   string             `db:"document_type" json:"documentType"`
	DocumentMasked string             `db:"document_masked" json:"documentMasked"`
	Status         ConsultationStatus `db:"status" json:"status"`
	Protocol       string             `db:"protocol" json:"protocol,omitempty"`
	ErrorCode      string             `db:"error_code" json:"errorCode,omitempty"`
	CreatedAt      time.Time          `db:"created_at" json:"createdAt"`
}

// ConsultationFilter narrows history listings.
type ConsultationFilter struct {
	Slug   string
	Status ConsultationStatus
	Offset int
	Limit  int
}

// SlugCount is a per-consultation-type total for the catalog counters.
type SlugCount struct {
	Slug  string `db:"slug" json:"slug"`
	Count int    `db:"count" json:"count"`
}

// Balance is the user's prepaid consultation balance, relayed from the backend.
type Balance struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Available float64 `json:"available"`
	UpdatedAt string  `json:"updatedAt"`
}
