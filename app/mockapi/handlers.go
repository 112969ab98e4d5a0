package mockapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/abacatepay-go/app/codec"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/factory"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
)

var (
	errMissingField     = errors.New("missing required field")
	errCustomerNotFound = errors.New("customer not found")
)

type envelope struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
}

func (s *Server) ListCustomers(ctx echo.Context) error {
	s.mu.Lock()
	items := make([]interface{}, 0, len(s.customers))
	for _, c := range s.customers {
		items = append(items, hydrator.Dehydrate(hydrator.CustomerSchema, c))
	}
	s.mu.Unlock()

	return writeData(ctx, http.StatusOK, items)
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	body, err := decodeBody(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	metadata, err := customerMetadataFromBody(body)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	customer := &entity.Customer{ID: newID("cust_"), Metadata: metadata}
	s.mu.Lock()
	s.customers = append(s.customers, customer)
	s.mu.Unlock()

	factory.LoggerWithContext(s.logger, ctx).WithField("customer_id", customer.ID).Info("Customer created")
	return writeData(ctx, http.StatusOK, hydrator.Dehydrate(hydrator.CustomerSchema, customer))
}

func (s *Server) ListBillings(ctx echo.Context) error {
	s.mu.Lock()
	items := make([]interface{}, 0, len(s.billings))
	for _, b := range s.billings {
		items = append(items, hydrator.Dehydrate(hydrator.BillingSchema, b))
	}
	s.mu.Unlock()

	return writeData(ctx, http.StatusOK, items)
}

func (s *Server) CreateBilling(ctx echo.Context) error {
	body, err := decodeBody(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	billing, err := hydrator.Hydrate(hydrator.BillingSchema, withoutCustomer(body))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	returnURL, _ := body["returnUrl"].(string)
	completionURL, _ := body["completionUrl"].(string)
	switch {
	case billing.Frequency == "":
		return writeError(ctx, http.StatusBadRequest, missingField("frequency"))
	case len(billing.Methods) == 0:
		return writeError(ctx, http.StatusBadRequest, missingField("methods"))
	case len(billing.Products) == 0:
		return writeError(ctx, http.StatusBadRequest, missingField("products"))
	case returnURL == "":
		return writeError(ctx, http.StatusBadRequest, missingField("returnUrl"))
	case completionURL == "":
		return writeError(ctx, http.StatusBadRequest, missingField("completionUrl"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.resolveCustomer(body)
	if err != nil {
		return writeError(ctx, statusFor(err), err.Error())
	}

	now := s.now()
	billing.ID = newID("bill_")
	billing.URL = "https://abacatepay.com/pay/" + billing.ID
	billing.DevMode = true
	billing.Metadata = &entity.BillingMetadata{ReturnURL: returnURL, CompletionURL: completionURL}
	billing.Customer = customer
	billing.CreatedAt = now
	billing.UpdatedAt = now
	billing.Amount = 0
	for i := range billing.Products {
		billing.Products[i].ID = newID("prod_")
		billing.Amount += billing.Products[i].Quantity * billing.Products[i].Price
	}
	if billing.Frequency == entity.FrequencyMultiplePayments {
		billing.NextBilling = now.AddDate(0, 1, 0)
	}
	s.billings = append(s.billings, billing)

	factory.LoggerWithContext(s.logger, ctx).WithField("billing_id", billing.ID).Info("Billing created")
	return writeData(ctx, http.StatusOK, hydrator.Dehydrate(hydrator.BillingSchema, billing))
}

func (s *Server) CreatePixQrCode(ctx echo.Context) error {
	body, err := decodeBody(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	pix, err := hydrator.Hydrate(hydrator.PixQrCodeSchema, withoutCustomer(body))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	if pix.Amount <= 0 {
		return writeError(ctx, http.StatusBadRequest, missingField("amount"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.resolveCustomer(body)
	if err != nil {
		return writeError(ctx, statusFor(err), err.Error())
	}

	expiresIn := defaultPixExpiresIn
	if pix.ExpiresIn != nil && *pix.ExpiresIn > 0 {
		expiresIn = *pix.ExpiresIn
	}

	now := s.now()
	pix.ID = newID("pix_char_")
	pix.Status = entity.PixQrCodeStatusPending
	pix.DevMode = true
	pix.BrCode = fmt.Sprintf("00020101021226950014br.gov.bcb.pix2573%s5204000053039865406%d", pix.ID, pix.Amount)
	pix.BrCodeBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(pix.BrCode))
	pix.PlatformFee = pixPlatformFee
	pix.CreatedAt = now
	pix.UpdatedAt = now
	pix.ExpiresAt = now.Add(time.Duration(expiresIn) * time.Second)
	pix.ExpiresIn = nil
	pix.Customer = customer
	s.pixQrCodes = append(s.pixQrCodes, pix)

	factory.LoggerWithContext(s.logger, ctx).WithField("pix_qrcode_id", pix.ID).Info("Pix QRCode created")
	return writeData(ctx, http.StatusOK, hydrator.Dehydrate(hydrator.PixQrCodeSchema, pix))
}

// resolveCustomer must be called with s.mu held.
func (s *Server) resolveCustomer(body map[string]interface{}) (*entity.Customer, error) {
	if raw, ok := body["customerId"]; ok && raw != nil {
		id, err := codec.String(raw)
		if err != nil {
			return nil, err
		}
		for _, c := range s.customers {
			if c.ID == id {
				return c, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", errCustomerNotFound, id)
	}

	raw, ok := body["customer"]
	if !ok || raw == nil {
		return nil, nil
	}
	m, err := codec.Map(raw)
	if err != nil {
		return nil, err
	}
	metadata, err := customerMetadataFromBody(m)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{ID: newID("cust_"), Metadata: metadata}
	s.customers = append(s.customers, customer)
	return customer, nil
}

func customerMetadataFromBody(body map[string]interface{}) (*entity.CustomerMetadata, error) {
	metadata, err := hydrator.Hydrate(hydrator.CustomerMetadataSchema, body)
	if err != nil {
		return nil, err
	}
	switch {
	case metadata.Name == "":
		return nil, fmt.Errorf("%w: name", errMissingField)
	case metadata.Email == "":
		return nil, fmt.Errorf("%w: email", errMissingField)
	case metadata.Cellphone == "":
		return nil, fmt.Errorf("%w: cellphone", errMissingField)
	case metadata.TaxID == "":
		return nil, fmt.Errorf("%w: taxId", errMissingField)
	}
	return metadata, nil
}

func withoutCustomer(body map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(body))
	for k, v := range body {
		if k == "customer" || k == "customerId" {
			continue
		}
		result[k] = v
	}
	return result
}

func decodeBody(ctx echo.Context) (map[string]interface{}, error) {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()

	var body map[string]interface{}
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("empty body")
	}
	return body, nil
}

func statusFor(err error) int {
	if errors.Is(err, errCustomerNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func missingField(name string) string {
	return fmt.Sprintf("%s: %s", errMissingField.Error(), name)
}

func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func writeData(ctx echo.Context, statusCode int, data interface{}) error {
	return ctx.JSON(statusCode, &envelope{Data: data})
}

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &envelope{Error: &message})
}
