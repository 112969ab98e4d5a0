package mapper

import (
	"fmt"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
)

func CustomerToCreateRequest(item *entity.Customer) (map[string]interface{}, error) {
	if item == nil {
		return nil, missing("customer")
	}
	return customerBody(item, "")
}

func BillingToCreateRequest(item *entity.Billing) (map[string]interface{}, error) {
	if item == nil {
		return nil, missing("billing")
	}
	if item.Frequency == "" {
		return nil, missing("frequency")
	}
	if len(item.Methods) == 0 {
		return nil, missing("methods")
	}
	if len(item.Products) == 0 {
		return nil, missing("products")
	}
	if item.Metadata == nil || item.Metadata.ReturnURL == "" {
		return nil, missing("returnUrl")
	}
	if item.Metadata.CompletionURL == "" {
		return nil, missing("completionUrl")
	}

	methods := make([]string, 0, len(item.Methods))
	for _, m := range item.Methods {
		methods = append(methods, string(m))
	}

	products := make([]map[string]interface{}, 0, len(item.Products))
	for _, p := range item.Products {
		products = append(products, map[string]interface{}{
			"externalId":  p.ExternalID,
			"name":        p.Name,
			"description": p.Description,
			"quantity":    p.Quantity,
			"price":       p.Price,
		})
	}

	req := map[string]interface{}{
		"frequency":     string(item.Frequency),
		"methods":       methods,
		"returnUrl":     item.Metadata.ReturnURL,
		"completionUrl": item.Metadata.CompletionURL,
		"products":      products,
	}
	if err := assignCustomer(req, item.Customer); err != nil {
		return nil, err
	}

	return req, nil
}

func PixQrCodeToCreateRequest(item *entity.PixQrCode) (map[string]interface{}, error) {
	if item == nil {
		return nil, missing("pixQrCode")
	}
	if item.Amount <= 0 {
		return nil, missing("amount")
	}

	req := map[string]interface{}{
		"amount": item.Amount,
	}
	if item.ExpiresIn != nil {
		req["expiresIn"] = *item.ExpiresIn
	}
	if item.Description != nil {
		req["description"] = *item.Description
	}
	if err := assignCustomer(req, item.Customer); err != nil {
		return nil, err
	}
	if item.Metadata != nil {
		req["metadata"] = cloneMetadata(item.Metadata)
	}

	return req, nil
}

// assignCustomer references a known customer by id, or embeds the data of a new one.
func assignCustomer(req map[string]interface{}, customer *entity.Customer) error {
	if customer == nil {
		return nil
	}
	if customer.HasID() {
		req["customerId"] = customer.ID
		return nil
	}

	body, err := customerBody(customer, "customer.")
	if err != nil {
		return err
	}
	req["customer"] = body
	return nil
}

func customerBody(customer *entity.Customer, prefix string) (map[string]interface{}, error) {
	if customer.Metadata == nil {
		return nil, missing(prefix + "metadata")
	}

	body := make(map[string]interface{}, 4)
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", customer.Metadata.Name},
		{"email", customer.Metadata.Email},
		{"cellphone", customer.Metadata.Cellphone},
		{"tax_id", customer.Metadata.TaxID},
	} {
		body[codec.ToWireKey(f.name)] = f.value
	}
	return body, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
}

func cloneMetadata(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
