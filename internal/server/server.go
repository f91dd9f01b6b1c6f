package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/processgpt/ai-facade-go/internal/config"
	"github.com/processgpt/ai-facade-go/internal/intent"
	"github.com/processgpt/ai-facade-go/internal/metrics"
	"github.com/processgpt/ai-facade-go/internal/provider"
	"github.com/processgpt/ai-facade-go/internal/provider/canned"
	"github.com/processgpt/ai-facade-go/internal/routing"
	"github.com/processgpt/ai-facade-go/internal/upstream"
)

const tracerName = "github.com/processgpt/ai-facade-go/internal/server"

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	router *routing.Router
	health HealthStatus
	relay  *upstream.Client
	rec    *metrics.Recorder
	logger *zap.Logger
}

func New(cfg *config.Config, health HealthStatus, logger *zap.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	templates, err := intent.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}

	rec := metrics.New()
	rt := routing.New()
	rt.Register(routing.NewModelInfo(cfg.Model, cfg.ModelOwner), canned.New(cfg.Model, templates, rec))

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		router: rt,
		health: health,
		rec:    rec,
		logger: logger,
	}
	if cfg.UpstreamURL != "" {
		srv.relay = upstream.New(cfg.UpstreamURL, cfg.UpstreamWait)
	}
	srv.registerRoutes()
	return srv, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthCheck)
	api := s.engine.Group("/v1")
	api.GET("/models", s.listModels)
	api.POST("/chat/completions", s.chatCompletion)
	if s.relay != nil {
		s.engine.POST("/api/generate", s.generate)
	}
	s.engine.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
}

// Relay exposes the upstream client, for the startup reachability probe.
func (s *Server) Relay() *upstream.Client {
	return s.relay
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.engine,
	}
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down",
			zap.Int("completions_served", s.rec.TotalChats()),
			zap.Int("relay_errors", s.rec.RelayErrors()),
		)
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, s.health)
}

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.router.Models()})
}

func (s *Server) chatCompletion(c *gin.Context) {
	ctx, span := otel.Tracer(tracerName).Start(c.Request.Context(), "chat.completion")
	defer span.End()

	var req provider.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, provider.ErrorResponse{Error: err.Error()})
		return
	}

	prov := s.router.ProviderFor(req.Model)
	resp, err := prov.Chat(ctx, &req)
	if err != nil {
		s.logger.Error("completion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, provider.ErrorResponse{Error: err.Error()})
		return
	}

	s.logger.Debug("completion served",
		zap.String("model", resp.Model),
		zap.Int("messages", len(req.Messages)),
	)
	c.JSON(http.StatusOK, resp)
}

// generate relays an arbitrary JSON payload to the upstream inference
// runtime and returns its response verbatim. No retries: a failed upstream
// call surfaces once as a 500.
func (s *Server) generate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, provider.ErrorResponse{Error: err.Error()})
		return
	}

	status, respBody, err := s.relay.Generate(c.Request.Context(), body)
	if err != nil {
		s.rec.RecordRelayError()
		s.logger.Error("relay failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, provider.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(status, "application/json", respBody)
}
