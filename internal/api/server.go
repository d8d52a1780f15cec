package api

import (
	"net/http"

	"pizzaiolo/internal/conversation"
	"pizzaiolo/internal/monitoring"
	"pizzaiolo/internal/processor"
	"pizzaiolo/internal/speech"
	"pizzaiolo/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ChatAPI is the HTTP and WebSocket surface of the ordering service.
type ChatAPI struct {
	Router *gin.Engine

	processor *processor.TurnProcessor
	sessions  *conversation.Manager
	store     *store.Store
	monitor   *monitoring.Monitor
	metrics   *monitoring.MetricsCollector
	jwtSecret string
	provider  string
	synth     speech.Synthesizer
	log       *logrus.Logger
}

// Options carries the collaborators the API needs.
type Options struct {
	Processor    *processor.TurnProcessor
	Store        *store.Store
	Monitor      *monitoring.Monitor
	Metrics      *monitoring.MetricsCollector
	JWTSecret    string
	ProviderName string
	// Synthesizer speaks assistant replies on the websocket channel.
	// Defaults to the no-op implementation.
	Synthesizer speech.Synthesizer
	Logger      *logrus.Logger
}

// NewChatAPI creates the API server and wires its routes.
func NewChatAPI(opts Options) *ChatAPI {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Synthesizer == nil {
		opts.Synthesizer = speech.NoopSynthesizer{}
	}

	api := &ChatAPI{
		Router:    gin.Default(),
		processor: opts.Processor,
		sessions:  conversation.NewManager(),
		store:     opts.Store,
		monitor:   opts.Monitor,
		metrics:   opts.Metrics,
		jwtSecret: opts.JWTSecret,
		provider:  opts.ProviderName,
		synth:     opts.Synthesizer,
		log:       opts.Logger,
	}

	api.setupRoutes()
	return api
}

func (a *ChatAPI) setupRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Pizzaiolo API is running"})
	})

	a.Router.GET("/ws", a.HandleWebSocket)

	v1 := a.Router.Group("/api/v1")
	{
		v1.POST("/chat", a.Chat)

		v1.POST("/orders", a.SaveOrder)
		v1.GET("/orders", a.ListOrders)
		v1.GET("/orders/:id", a.GetOrder)

		v1.GET("/metrics", a.Metrics)
	}
}

// Metrics returns the lightweight JSON metrics view.
func (a *ChatAPI) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.GetMetrics())
}
