// Package webserver hosts the echo instance and the route registration
// helpers the API packages build on.
package webserver

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/bjo163/showjumps-crm/config"
	"github.com/bjo163/showjumps-crm/internal/store"
)

// ContextKey names for request-scoped values set by the injection middleware.
const (
	CtxStore  = "crm_store"
	CtxConfig = "crm_config"
)

// AppContext is the slice of the application the web layer depends on.
type AppContext interface {
	Config() *config.AppConfig
	Store() *store.Store
}

type WebServer struct {
	app  AppContext
	root *echo.Echo
}

var server *WebServer

// Init builds the package-level web server instance. Route registration via
// ApiGET and friends must happen after Init.
func Init(app AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = app.Config().Web.Debug
	e.JSONSerializer = jsonSerializer{}
	e.Validator = &payloadValidator{v: validator.New()}

	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(zapLogger())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxStore, app.Store())
			c.Set(CtxConfig, app.Config())
			return next(c)
		}
	})

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}
		_ = c.JSON(code, map[string]interface{}{
			"code":    code,
			"message": message,
		})
	}

	server = &WebServer{app: app, root: e}
	return server
}

// Instance returns the package-level server; Init must have run.
func Instance() *WebServer {
	return server
}

// Echo exposes the underlying echo instance (tests drive handlers through it).
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Start blocks serving HTTP on the configured listen address.
func (s *WebServer) Start() error {
	addr := s.app.Config().Web.Listen()
	zap.S().Infof("web server listening on %s", addr)
	return s.root.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// GetStore fetches the injected store from the request context.
func GetStore(c echo.Context) *store.Store {
	return c.Get(CtxStore).(*store.Store)
}

// GetConfig fetches the injected config from the request context.
func GetConfig(c echo.Context) *config.AppConfig {
	return c.Get(CtxConfig).(*config.AppConfig)
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(path, h)
}
