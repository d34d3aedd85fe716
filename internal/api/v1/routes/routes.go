// Package routes wires the v1 handlers onto the router.
package routes

import (
	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/v1/handlers"
	"yt-digest/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers. Jobs may be nil
// when temporal is not configured; the endpoints then answer 503.
type ServiceContainer struct {
	PlaylistService services.PlaylistService
	DigestService   services.DigestService
	IngestService   services.IngestService
	ChatService     services.ChatService
	JobService      services.JobService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	playlistHandler := handlers.NewPlaylistHandler(container.PlaylistService)
	digestHandler := handlers.NewDigestHandler(container.DigestService)
	ingestHandler := handlers.NewIngestHandler(container.IngestService)

	playlists := router.Group("/playlists")
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("", playlistHandler.List)
		playlists.GET("/:id", playlistHandler.Get)
		playlists.DELETE("/:id", playlistHandler.Delete)

		playlists.POST("/:id/summarize", digestHandler.Summarize)
		playlists.GET("/:id/digest", digestHandler.Latest)

		playlists.POST("/:id/ingest", ingestHandler.Ingest)
		playlists.DELETE("/:id/index", ingestHandler.DropIndex)
	}

	if container.ChatService != nil {
		chatHandler := handlers.NewChatHandler(container.ChatService)
		router.POST("/chat", chatHandler.Ask)
	}

	jobHandler := handlers.NewJobHandler(container.JobService)
	router.GET("/jobs/:id", jobHandler.Status)
}
