package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every HTTP handler the router needs.
type HandlerBundle struct {
	// Scheduling endpoints.
	ListTimeslotsHandler         gin.HandlerFunc
	BookTimeslotHandler          gin.HandlerFunc
	CreateTimeslotHandler        gin.HandlerFunc
	CreateRecurringSeriesHandler gin.HandlerFunc
	DeleteTimeslotHandler        gin.HandlerFunc
	RunAuditHandler              gin.HandlerFunc

	// Client intake endpoints.
	CreateClientHandler gin.HandlerFunc
	GetClientHandler    gin.HandlerFunc
	ListClientsHandler  gin.HandlerFunc
	UpdateClientHandler gin.HandlerFunc
	DeleteClientHandler gin.HandlerFunc

	// Report card endpoints.
	CreateReportCardHandler        gin.HandlerFunc
	GetReportCardHandler           gin.HandlerFunc
	ListReportCardsByClientHandler gin.HandlerFunc
	UploadReportPhotoHandler       gin.HandlerFunc
	DeleteReportCardHandler        gin.HandlerFunc
}
