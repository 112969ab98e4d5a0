package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/client"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
)

var pixFlags struct {
	amount      int64
	description string
	expiresIn   int64
	customerID  string
}

var pixCmd = &cobra.Command{
	Use:   "pix",
	Short: "Manage Pix QRCodes",
}

var pixCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a Pix QRCode",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pix := &entity.PixQrCode{Amount: pixFlags.amount}
		if cmd.Flags().Changed("description") {
			description := pixFlags.description
			pix.Description = &description
		}
		if cmd.Flags().Changed("expires-in") {
			expiresIn := pixFlags.expiresIn
			pix.ExpiresIn = &expiresIn
		}
		if pixFlags.customerID != "" {
			pix.Customer = &entity.Customer{ID: pixFlags.customerID}
		}

		return runCommand(cmd, "pix_create", func(ctx context.Context, c *client.Client) error {
			created, err := c.PixQrCodes().Create(ctx, pix)
			if err != nil {
				return err
			}
			return printResource(cmd.OutOrStdout(), hydrator.Dehydrate(hydrator.PixQrCodeSchema, created), created.Amount)
		})
	},
}

func init() {
	rootCmd.AddCommand(pixCmd)
	pixCmd.AddCommand(pixCreateCmd)

	pixCreateCmd.Flags().Int64Var(&pixFlags.amount, "amount", 0, "Amount in centavos")
	pixCreateCmd.Flags().StringVar(&pixFlags.description, "description", "", "Message shown to the payer")
	pixCreateCmd.Flags().Int64Var(&pixFlags.expiresIn, "expires-in", 0, "Expiration in seconds")
	pixCreateCmd.Flags().StringVar(&pixFlags.customerID, "customer-id", "", "Existing customer id")
}
