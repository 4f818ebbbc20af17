package routes

import (
	"net/http"
	"time"

	"barkbook/handlers"
	"barkbook/middleware"
	"barkbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterReportRoutes(r, hb)
}

// RegisterScheduleRoutes registers the calendar-availability endpoints.
// Listing and booking are public; window management and the audit trigger
// are operator-only.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/timeslots", hb.ListTimeslotsHandler)
		api.POST("/book", hb.BookTimeslotHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("/timeslots", hb.CreateTimeslotHandler)
		admin.POST("/timeslots/recurring", hb.CreateRecurringSeriesHandler)
		admin.DELETE("/timeslots/:id", hb.DeleteTimeslotHandler)
		admin.POST("/audit", hb.RunAuditHandler)
	}
}

// RegisterClientRoutes registers client intake endpoints (operator-only).
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.POST("", hb.CreateClientHandler)
		api.GET("", hb.ListClientsHandler)
		api.GET("/:id", hb.GetClientHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", hb.DeleteClientHandler)
	}
}

// RegisterReportRoutes registers report card endpoints (operator-only).
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.POST("", hb.CreateReportCardHandler)
		api.GET("/:id", hb.GetReportCardHandler)
		api.GET("/client/:clientId", hb.ListReportCardsByClientHandler)
		api.POST("/:id/photo", hb.UploadReportPhotoHandler)
		api.DELETE("/:id", hb.DeleteReportCardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
