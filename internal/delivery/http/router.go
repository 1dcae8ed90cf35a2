package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/handler"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/middleware"
	"github.com/vivahsetu/matrimony-backend/internal/metrics"
)

// SetupRouter wires all HTTP routes.
func SetupRouter(
	matchHandler *handler.MatchHandler,
	interestHandler *handler.InterestHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	registerValidations()

	router := gin.Default()

	router.GET("/health", healthCheck)
	router.HEAD("/health", healthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		matches := v1.Group("/matches")
		{
			matches.GET("", matchHandler.BrowseMatches)
			matches.GET("/tabs", matchHandler.GetTabCounts)
		}

		interests := v1.Group("/interest")
		{
			interests.POST("/send", interestHandler.SendInterest)
			interests.GET("/sent", interestHandler.GetSentInterests)
		}

		profiles := v1.Group("/profile")
		{
			profiles.GET("/me", profileHandler.GetMyProfile)
			profiles.PUT("/me", profileHandler.UpdateMyProfile)
		}
	}

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
