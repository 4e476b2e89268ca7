package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/delivery/http/handler"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/delivery/http/middleware"
)

type Router struct {
	matchHandler      *handler.MatchHandler
	preferenceHandler *handler.PreferenceHandler
	chatHandler       *handler.ChatHandler
	debugHandler      *handler.DebugHandler
	authHandler       *handler.AuthHandler
	adminMiddleware   *middleware.AdminMiddleware
}

func NewRouter(
	matchHandler *handler.MatchHandler,
	preferenceHandler *handler.PreferenceHandler,
	chatHandler *handler.ChatHandler,
	debugHandler *handler.DebugHandler,
	authHandler *handler.AuthHandler,
	adminMiddleware *middleware.AdminMiddleware,
) *Router {
	return &Router{
		matchHandler:      matchHandler,
		preferenceHandler: preferenceHandler,
		chatHandler:       chatHandler,
		debugHandler:      debugHandler,
		authHandler:       authHandler,
		adminMiddleware:   adminMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/admin-token", r.authHandler.AdminToken)
		}

		matches := api.Group("/matches")
		{
			matches.GET("/roommate-matches/:userId", r.matchHandler.GetRoommateMatches)
			matches.GET("/resident-matches/:userId", r.matchHandler.GetResidentMatches)
			matches.GET("/mutual-matches/:userId", r.matchHandler.GetMutualMatches)
			matches.POST("/action", r.matchHandler.Action)

			// Full table dump is admin only.
			matches.GET("/", r.adminMiddleware.RequireAdmin(), r.matchHandler.ListAll)
		}

		preferences := api.Group("/preferences")
		{
			preferences.POST("/save-roommate-preferences", r.preferenceHandler.SaveRoommatePreferences)
			preferences.POST("/save-resident-preferences", r.preferenceHandler.SaveResidentPreferences)
			preferences.GET("/get-roommate-preferences/:identifier", r.preferenceHandler.GetRoommatePreferences)
			preferences.GET("/get-resident-preferences/:identifier", r.preferenceHandler.GetResidentPreferences)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/rooms/get-or-create", r.chatHandler.GetOrCreateRoom)
			chat.GET("/rooms/:userId", r.chatHandler.GetRooms)
			chat.GET("/messages/:roomId", r.chatHandler.GetMessages)
			chat.POST("/messages", r.chatHandler.SendMessage)
		}

		debug := api.Group("/debug")
		debug.Use(r.adminMiddleware.RequireAdmin())
		{
			debug.GET("/schema-health", r.debugHandler.SchemaHealth)
			debug.POST("/create-user", r.debugHandler.CreateUser)
			debug.GET("/user-info/:identifier", r.debugHandler.UserInfo)
			debug.GET("/list-users", r.debugHandler.ListUsers)
		}
	}

	return router
}
