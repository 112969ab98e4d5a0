package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/client"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
)

var billingFile string

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Manage billings",
}

var billingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List billings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommand(cmd, "billing_list", func(ctx context.Context, c *client.Client) error {
			items, err := c.Billing().List(ctx)
			if err != nil {
				return err
			}
			for _, item := range items {
				if err := printResource(cmd.OutOrStdout(), hydrator.Dehydrate(hydrator.BillingSchema, item), item.Amount); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var billingCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a billing from a JSON file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		billing, err := loadBilling(billingFile)
		if err != nil {
			return err
		}
		return runCommand(cmd, "billing_create", func(ctx context.Context, c *client.Client) error {
			created, err := c.Billing().Create(ctx, billing)
			if err != nil {
				return err
			}
			return printResource(cmd.OutOrStdout(), hydrator.Dehydrate(hydrator.BillingSchema, created), created.Amount)
		})
	},
}

// loadBilling reads a billing document. Keys may be snake_case or camelCase.
func loadBilling(path string) (*entity.Billing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return hydrator.Hydrate(hydrator.BillingSchema, raw)
}

func init() {
	rootCmd.AddCommand(billingCmd)
	billingCmd.AddCommand(billingListCmd)
	billingCmd.AddCommand(billingCreateCmd)

	billingCreateCmd.Flags().StringVar(&billingFile, "file", "", "Path to the billing JSON document")
	_ = billingCreateCmd.MarkFlagRequired("file")
}
