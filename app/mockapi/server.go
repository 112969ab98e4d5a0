package mockapi

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/factory"
)

const (
	defaultPixExpiresIn = int64(86400)
	pixPlatformFee      = int64(80)
)

// Server is an in-memory stand-in for the remote API, answering with the same
// {"data": ..., "error": ...} envelope.
type Server struct {
	echo   *echo.Echo
	token  string
	logger logrus.FieldLogger
	now    func() time.Time

	mu         sync.Mutex
	billings   []*entity.Billing
	customers  []*entity.Customer
	pixQrCodes []*entity.PixQrCode
}

// New builds a server accepting token as Bearer credential. A nil logger falls back to the
// "mock-api" module logger.
func New(token string, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = factory.NewModuleLogger("mock-api")
	}
	s := &Server{
		token:  strings.TrimSpace(token),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.echo = s.setupHTTPServer()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	s.logger.WithField("addr", addr).Info("Starting mock API")
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupHTTPServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := factory.LoggerWithContext(s.logger, ctx).WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Debug("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())

	v1 := e.Group("/v1", s.requireToken)

	billing := v1.Group("/billing")
	billing.GET("/list", s.ListBillings)
	billing.POST("/create", s.CreateBilling)

	customer := v1.Group("/customer")
	customer.GET("/list", s.ListCustomers)
	customer.POST("/create", s.CreateCustomer)

	pix := v1.Group("/pixQrCode")
	pix.POST("/create", s.CreatePixQrCode)

	return e
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderAuthorization))
		if s.token == "" || header != "Bearer "+s.token {
			return writeError(ctx, http.StatusUnauthorized, "Unauthorized")
		}
		return next(ctx)
	}
}
