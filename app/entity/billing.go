package entity

import "time"

type Frequency string

const (
	FrequencyOneTime          Frequency = "ONE_TIME"
	FrequencyMultiplePayments Frequency = "MULTIPLE_PAYMENTS"
)

var Frequencies = []Frequency{FrequencyOneTime, FrequencyMultiplePayments}

func ParseFrequency(raw string) (Frequency, error) {
	return ResolveEnum(Frequencies, raw)
}

// Method identifies a payment method accepted by a billing. Values are passed through as
// sent by the server.
type Method string

const MethodPix Method = "PIX"

type Billing struct {
	ID          string
	URL         string
	Amount      int64
	DevMode     bool
	Frequency   Frequency
	Methods     []Method
	Products    []Product
	Metadata    *BillingMetadata
	Customer    *Customer
	NextBilling time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BillingMetadata struct {
	ReturnURL     string
	CompletionURL string
}

// Product is a billing line item. Price is in minor currency units.
type Product struct {
	ID          string
	ExternalID  string
	Name        string
	Description string
	Quantity    int64
	Price       int64
}
