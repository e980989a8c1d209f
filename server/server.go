// Package server HTTP API для разбора сообщений и работы с реестрами.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cargoparser/database"
	"cargoparser/dictionaries"
	"cargoparser/export"
	"cargoparser/internal/config"
	"cargoparser/parser"
	"cargoparser/server/middleware"
)

// Server HTTP сервер разбора и реестров
type Server struct {
	config     *config.Config
	db         *database.DB
	parser     *parser.Parser
	exporter   *export.Exporter
	engine     *gin.Engine
	httpServer *http.Server
	startTime  time.Time
}

// NewServer создает сервер со всеми зависимостями
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.NewDBWithConfig(cfg.DatabasePath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	p := parser.New(dictionaries.Default(), parser.Options{
		MinDriverAge: cfg.MinDriverAge,
		MaxDriverAge: cfg.MaxDriverAge,
	})

	s := &Server{
		config:    cfg,
		db:        db,
		parser:    p,
		exporter:  export.NewExporter(db),
		startTime: time.Now(),
	}
	s.engine = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.engine,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: 2 * cfg.RequestTimeout,
	}

	return s, nil
}

// buildRouter настраивает маршруты и сквозные обработчики
func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.Gzip(),
		middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst),
	)

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/parse/:kind", s.handleParse)

		api.GET("/drivers", s.handleListDrivers)
		api.GET("/drivers/:name", s.handleFindDriver)
		api.DELETE("/drivers/:id", s.handleDeleteDriver)

		api.GET("/clients", s.handleListClients)
		api.GET("/carriers", s.handleListCarriers)
		api.DELETE("/organizations/:id", s.handleDeleteOrganization)

		api.GET("/transportations", s.handleListTransportations)

		api.GET("/export/:format", s.handleExport)
	}

	return r
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	log.Printf("Server listening on port %s", s.config.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер и закрывает базу данных
func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("Shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Handler возвращает корневой http.Handler, используется в тестах
func (s *Server) Handler() http.Handler {
	return s.engine
}
