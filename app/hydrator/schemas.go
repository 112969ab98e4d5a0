package hydrator

import (
	"time"

	"github.com/vibast-solutions/abacatepay-go/app/entity"
)

var CustomerMetadataSchema = NewSchema("customer_metadata",
	String("name", func(m *entity.CustomerMetadata) *string { return &m.Name }),
	String("email", func(m *entity.CustomerMetadata) *string { return &m.Email }),
	String("cellphone", func(m *entity.CustomerMetadata) *string { return &m.Cellphone }),
	String("tax_id", func(m *entity.CustomerMetadata) *string { return &m.TaxID }),
)

var CustomerSchema = NewSchema("customer",
	String("id", func(c *entity.Customer) *string { return &c.ID }),
	Resource("metadata", CustomerMetadataSchema, func(c *entity.Customer) **entity.CustomerMetadata { return &c.Metadata }),
)

var ProductSchema = NewSchema("product",
	String("id", func(p *entity.Product) *string { return &p.ID }),
	String("external_id", func(p *entity.Product) *string { return &p.ExternalID }),
	String("name", func(p *entity.Product) *string { return &p.Name }),
	String("description", func(p *entity.Product) *string { return &p.Description }),
	Int("quantity", func(p *entity.Product) *int64 { return &p.Quantity }),
	Int("price", func(p *entity.Product) *int64 { return &p.Price }),
)

var BillingMetadataSchema = NewSchema("billing_metadata",
	String("return_url", func(m *entity.BillingMetadata) *string { return &m.ReturnURL }),
	String("completion_url", func(m *entity.BillingMetadata) *string { return &m.CompletionURL }),
)

var BillingSchema = NewSchema("billing",
	String("id", func(b *entity.Billing) *string { return &b.ID }),
	String("url", func(b *entity.Billing) *string { return &b.URL }),
	Int("amount", func(b *entity.Billing) *int64 { return &b.Amount }),
	Bool("dev_mode", func(b *entity.Billing) *bool { return &b.DevMode }),
	Enum("frequency", entity.ParseFrequency, func(b *entity.Billing) *entity.Frequency { return &b.Frequency }),
	StringList("methods", func(b *entity.Billing) *[]entity.Method { return &b.Methods }),
	ResourceList("products", ProductSchema, func(b *entity.Billing) *[]entity.Product { return &b.Products }),
	Resource("metadata", BillingMetadataSchema, func(b *entity.Billing) **entity.BillingMetadata { return &b.Metadata }),
	Resource("customer", CustomerSchema, func(b *entity.Billing) **entity.Customer { return &b.Customer }),
	Timestamp("next_billing", func(b *entity.Billing) *time.Time { return &b.NextBilling }),
	Timestamp("created_at", func(b *entity.Billing) *time.Time { return &b.CreatedAt }),
	Timestamp("updated_at", func(b *entity.Billing) *time.Time { return &b.UpdatedAt }),
)

var PixQrCodeSchema = NewSchema("pix_qrcode",
	String("id", func(p *entity.PixQrCode) *string { return &p.ID }),
	Int("amount", func(p *entity.PixQrCode) *int64 { return &p.Amount }),
	Enum("status", entity.ParsePixQrCodeStatus, func(p *entity.PixQrCode) *entity.PixQrCodeStatus { return &p.Status }),
	Bool("dev_mode", func(p *entity.PixQrCode) *bool { return &p.DevMode }),
	String("br_code", func(p *entity.PixQrCode) *string { return &p.BrCode }),
	String("br_code_base64", func(p *entity.PixQrCode) *string { return &p.BrCodeBase64 }),
	Int("platform_fee", func(p *entity.PixQrCode) *int64 { return &p.PlatformFee }),
	Timestamp("created_at", func(p *entity.PixQrCode) *time.Time { return &p.CreatedAt }),
	Timestamp("updated_at", func(p *entity.PixQrCode) *time.Time { return &p.UpdatedAt }),
	Timestamp("expires_at", func(p *entity.PixQrCode) *time.Time { return &p.ExpiresAt }),
	OptionalInt("expires_in", func(p *entity.PixQrCode) **int64 { return &p.ExpiresIn }),
	OptionalString("description", func(p *entity.PixQrCode) **string { return &p.Description }),
	Resource("customer", CustomerSchema, func(p *entity.PixQrCode) **entity.Customer { return &p.Customer }),
	FreeForm("metadata", func(p *entity.PixQrCode) *map[string]interface{} { return &p.Metadata }),
)
