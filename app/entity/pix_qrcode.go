package entity

import "time"

type PixQrCodeStatus string

const (
	PixQrCodeStatusPending   PixQrCodeStatus = "PENDING"
	PixQrCodeStatusExpired   PixQrCodeStatus = "EXPIRED"
	PixQrCodeStatusCancelled PixQrCodeStatus = "CANCELLED"
	PixQrCodeStatusPaid      PixQrCodeStatus = "PAID"
	PixQrCodeStatusRefunded  PixQrCodeStatus = "REFUNDED"
)

var PixQrCodeStatuses = []PixQrCodeStatus{
	PixQrCodeStatusPending,
	PixQrCodeStatusExpired,
	PixQrCodeStatusCancelled,
	PixQrCodeStatusPaid,
	PixQrCodeStatusRefunded,
}

func ParsePixQrCodeStatus(raw string) (PixQrCodeStatus, error) {
	return ResolveEnum(PixQrCodeStatuses, raw)
}

// PixQrCode amounts and fees are in minor currency units. ExpiresIn is only sent on
// creation; the server answers with ExpiresAt.
type PixQrCode struct {
	ID           string
	Amount       int64
	Status       PixQrCodeStatus
	DevMode      bool
	BrCode       string
	BrCodeBase64 string
	PlatformFee  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ExpiresAt    time.Time
	ExpiresIn    *int64
	Description  *string
	Customer     *Customer
	Metadata     map[string]interface{}
}
