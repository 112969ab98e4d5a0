package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// formatBRL renders an amount in centavos as reais.
func formatBRL(minor int64) string {
	return "R$ " + decimal.New(minor, -2).StringFixed(2)
}

func printResource(w io.Writer, wire map[string]interface{}, amount int64) error {
	encoded, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(encoded)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "amount: %s\n", formatBRL(amount))
	return err
}
