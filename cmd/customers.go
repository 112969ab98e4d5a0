package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/client"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
)

var customerFlags entity.CustomerMetadata

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommand(cmd, "customers_list", func(ctx context.Context, c *client.Client) error {
			items, err := c.Customers().List(ctx)
			if err != nil {
				return err
			}
			wire := make([]map[string]interface{}, 0, len(items))
			for _, item := range items {
				wire = append(wire, hydrator.Dehydrate(hydrator.CustomerSchema, item))
			}
			encoded, err := json.MarshalIndent(wire, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return err
		})
	},
}

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommand(cmd, "customers_create", func(ctx context.Context, c *client.Client) error {
			metadata := customerFlags
			created, err := c.Customers().Create(ctx, &entity.Customer{Metadata: &metadata})
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(hydrator.Dehydrate(hydrator.CustomerSchema, created), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersCreateCmd)

	customersCreateCmd.Flags().StringVar(&customerFlags.Name, "name", "", "Customer name")
	customersCreateCmd.Flags().StringVar(&customerFlags.Email, "email", "", "Customer email")
	customersCreateCmd.Flags().StringVar(&customerFlags.Cellphone, "cellphone", "", "Customer cellphone")
	customersCreateCmd.Flags().StringVar(&customerFlags.TaxID, "tax-id", "", "Customer CPF or CNPJ")
}
