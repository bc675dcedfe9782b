package api

import (
	"go-staff-reports/internal/api/handler"
	"go-staff-reports/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/reports", handler.CreateReport)
	r.GET("/api/v1/reports", handler.ListReports)
	// More specific routes first
	r.GET("/api/v1/reports/*/results", handler.GetReportResults)
	r.GET("/api/v1/reports/*/errors", handler.GetReportErrors)
	r.GET("/api/v1/reports/*/download", handler.DownloadReport)
	// Generic run route last
	r.GET("/api/v1/reports/*", handler.GetReport)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
