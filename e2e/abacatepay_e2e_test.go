//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vibast-solutions/abacatepay-go/app/client"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/mapper"
)

const (
	defaultAbacatePayBaseURL = "http://localhost:8089/v1"
	defaultAbacatePayAPIKey  = "abc_dev_e2e"
)

func abacatePayBaseURL() string {
	if value := strings.TrimSpace(os.Getenv("ABACATEPAY_BASE_URL")); value != "" {
		return strings.TrimRight(value, "/")
	}
	return defaultAbacatePayBaseURL
}

func abacatePayAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("ABACATEPAY_API_KEY")); value != "" {
		return value
	}
	return defaultAbacatePayAPIKey
}

func waitForHTTP(baseURL, apiKey string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	httpClient := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/customer/list", nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		resp, err := httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("abacatepay api not ready at %s", baseURL)
}

func newClient(t *testing.T, apiKey string) *client.Client {
	t.Helper()
	c, err := client.New(client.Config{BaseURL: abacatePayBaseURL(), Token: apiKey})
	if err != nil {
		t.Fatalf("client init failed: %v", err)
	}
	return c
}

func TestAbacatePayE2E(t *testing.T) {
	if err := waitForHTTP(abacatePayBaseURL(), abacatePayAPIKey(), 30*time.Second); err != nil {
		t.Fatalf("api not ready: %v", err)
	}

	c := newClient(t, abacatePayAPIKey())
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	var customer *entity.Customer

	t.Run("InvalidToken", func(t *testing.T) {
		_, err := newClient(t, "invalid-token").Customers().List(ctx)
		var apiErr *client.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", apiErr.StatusCode)
		}
	})

	t.Run("CreateCustomer", func(t *testing.T) {
		created, err := c.Customers().Create(ctx, &entity.Customer{
			Metadata: &entity.CustomerMetadata{
				Name:      "E2E Customer",
				Email:     fmt.Sprintf("e2e-%d@example.com", suffix),
				Cellphone: "(11) 4002-8922",
				TaxID:     "123.456.789-01",
			},
		})
		if err != nil {
			t.Fatalf("create customer failed: %v", err)
		}
		if created.ID == "" || created.Metadata == nil {
			t.Fatalf("unexpected customer: %+v", created)
		}
		customer = created
	})

	t.Run("ListCustomersIncludesCreated", func(t *testing.T) {
		if customer == nil {
			t.Skip("customer not created")
		}
		items, err := c.Customers().List(ctx)
		if err != nil {
			t.Fatalf("list customers failed: %v", err)
		}
		for _, item := range items {
			if item.ID == customer.ID {
				return
			}
		}
		t.Fatalf("customer %s not listed", customer.ID)
	})

	t.Run("CreateBillingForCustomer", func(t *testing.T) {
		if customer == nil {
			t.Skip("customer not created")
		}
		created, err := c.Billing().Create(ctx, &entity.Billing{
			Frequency: entity.FrequencyOneTime,
			Methods:   []entity.Method{entity.MethodPix},
			Products: []entity.Product{
				{ExternalID: fmt.Sprintf("e2e-%d", suffix), Name: "E2E Product", Quantity: 2, Price: 1500},
			},
			Metadata: &entity.BillingMetadata{
				ReturnURL:     "https://example.com/app",
				CompletionURL: "https://example.com/done",
			},
			Customer: customer,
		})
		if err != nil {
			t.Fatalf("create billing failed: %v", err)
		}
		if created.Amount != 3000 {
			t.Fatalf("expected amount 3000, got %d", created.Amount)
		}
		if created.Customer == nil || created.Customer.ID != customer.ID {
			t.Fatalf("unexpected billing customer: %+v", created.Customer)
		}
	})

	t.Run("CreatePixQrCode", func(t *testing.T) {
		expiresIn := int64(600)
		created, err := c.PixQrCodes().Create(ctx, &entity.PixQrCode{Amount: 990, ExpiresIn: &expiresIn})
		if err != nil {
			t.Fatalf("create pix failed: %v", err)
		}
		if created.Status != entity.PixQrCodeStatusPending {
			t.Fatalf("expected PENDING, got %s", created.Status)
		}
		if created.BrCode == "" {
			t.Fatal("expected br code")
		}
	})

	t.Run("CreatePixQrCodeWithoutAmount", func(t *testing.T) {
		_, err := c.PixQrCodes().Create(ctx, &entity.PixQrCode{})
		if !errors.Is(err, mapper.ErrMissingRequiredField) {
			t.Fatalf("expected ErrMissingRequiredField, got %v", err)
		}
	})
}
