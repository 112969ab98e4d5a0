package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/client"
	"github.com/vibast-solutions/abacatepay-go/app/factory"
	"github.com/vibast-solutions/abacatepay-go/config"
)

var rootCmd = &cobra.Command{
	Use:   "abacatepay",
	Short: "AbacatePay API client",
	Long:  "Manage AbacatePay customers, billings and Pix QRCodes, or run a local mock of the API.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		if err := factory.ConfigureLogging(cfg.Log.Level); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		appConfig = cfg
		return nil
	},
	SilenceUsage: true,
}

var appConfig *config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() (*client.Client, error) {
	return client.New(client.Config{
		BaseURL:     appConfig.AbacatePay.BaseURL,
		Token:       appConfig.AbacatePay.APIKey,
		HTTPTimeout: appConfig.AbacatePay.HTTPTimeout,
	})
}
