package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/mockapi"
)

func TestFormatBRL(t *testing.T) {
	tests := map[int64]string{
		0:      "R$ 0.00",
		5:      "R$ 0.05",
		4000:   "R$ 40.00",
		123456: "R$ 1234.56",
	}
	for minor, want := range tests {
		if got := formatBRL(minor); got != want {
			t.Fatalf("formatBRL(%d): expected %q, got %q", minor, want, got)
		}
	}
}

func TestLoadBillingAcceptsBothKeyConventions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.json")
	doc := `{
		"frequency": "ONE_TIME",
		"methods": ["PIX"],
		"products": [{"external_id": "prod-1", "name": "Plano", "quantity": 1, "price": 2000}],
		"metadata": {"returnUrl": "https://example.com/app", "completion_url": "https://example.com/done"},
		"customer": {"id": "cust_123"}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	billing, err := loadBilling(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if billing.Frequency != entity.FrequencyOneTime {
		t.Fatalf("unexpected frequency: %s", billing.Frequency)
	}
	if len(billing.Methods) != 1 || billing.Methods[0] != entity.MethodPix {
		t.Fatalf("unexpected methods: %v", billing.Methods)
	}
	if len(billing.Products) != 1 || billing.Products[0].ExternalID != "prod-1" {
		t.Fatalf("unexpected products: %+v", billing.Products)
	}
	if billing.Metadata == nil || billing.Metadata.ReturnURL != "https://example.com/app" || billing.Metadata.CompletionURL != "https://example.com/done" {
		t.Fatalf("unexpected metadata: %+v", billing.Metadata)
	}
	if billing.Customer == nil || billing.Customer.ID != "cust_123" {
		t.Fatalf("unexpected customer: %+v", billing.Customer)
	}
}

func TestLoadBillingRejectsUnknownFrequency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.json")
	if err := os.WriteFile(path, []byte(`{"frequency":"WEEKLY"}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := loadBilling(path); !errors.Is(err, entity.ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
}

func TestPixCreateAgainstMockAPI(t *testing.T) {
	srv := httptest.NewServer(mockapi.New("cli-token", nil).Handler())
	defer srv.Close()

	t.Setenv("ABACATEPAY_API_KEY", "cli-token")
	t.Setenv("ABACATEPAY_BASE_URL", srv.URL+"/v1")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"pix", "create", "--amount", "1250", "--description", "coffee"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	idx := strings.LastIndex(output, "amount: ")
	if idx == -1 {
		t.Fatalf("missing amount line in output: %s", output)
	}
	if got := output[idx:]; got != "amount: R$ 12.50\n" {
		t.Fatalf("unexpected amount line: %q", got)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal([]byte(output[:idx]), &wire); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if wire["status"] != "PENDING" || wire["description"] != "coffee" || wire["amount"] != float64(1250) {
		t.Fatalf("unexpected output: %v", wire)
	}
}
