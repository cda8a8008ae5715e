package web

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/tdamianovich/portfolio/internal/config"
	"github.com/tdamianovich/portfolio/internal/content"
)

// Server wires the catalog, the metrics store and the gin engine.
type Server struct {
	cfg     config.Config
	catalog *content.Catalog
	metrics *Metrics
	engine  *gin.Engine
}

// New builds the router. metrics may be nil, in which case tracking and the
// admin surface are disabled.
func New(cfg config.Config, catalog *content.Catalog, metrics *Metrics) *Server {
	s := &Server{cfg: cfg, catalog: catalog, metrics: metrics}

	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"t": catalog.T,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	if metrics != nil {
		r.Use(metrics.TrackingMiddleware())
	}

	r.GET("/", s.handleHome)
	r.GET("/sections/:kind", s.handleSection)
	r.POST("/preferences/language", s.handleSetLanguage)
	r.POST("/preferences/theme", s.handleSetTheme)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	if metrics != nil {
		metrics.setupAdminRoutes(r)
	}

	s.engine = r
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%d", s.cfg.Port))
}
