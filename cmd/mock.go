package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/factory"
	"github.com/vibast-solutions/abacatepay-go/app/mockapi"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Local mock of the AbacatePay API",
}

var mockServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock API server",
	Long:  "Start an in-memory HTTP server answering the billing, customer and pixQrCode endpoints under /v1.",
	Run:   runMockServe,
}

func init() {
	rootCmd.AddCommand(mockCmd)
	mockCmd.AddCommand(mockServeCmd)
}

func runMockServe(_ *cobra.Command, _ []string) {
	if appConfig.AbacatePay.APIKey == "" {
		logrus.Fatal("ABACATEPAY_API_KEY is required to run the mock API")
	}

	srv := mockapi.New(appConfig.AbacatePay.APIKey, factory.NewModuleLogger("mock-api"))
	addr := net.JoinHostPort(appConfig.MockAPI.Host, appConfig.MockAPI.Port)

	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Mock API server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Mock API shutdown error")
	}

	logrus.Info("Server stopped")
}
