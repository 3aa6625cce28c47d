package http

import (
	"net/http"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	vehicleHandler *VehicleHandler,
	maintenanceHandler *MaintenanceHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API root
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Automotive Maintenance Tracker API",
			"docs":    "/swagger/index.html",
		})
	})

	// Vehicle routes
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("/", vehicleHandler.ListVehicles)
		vehicles.POST("/", vehicleHandler.CreateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
	// Maintenance routes
	maintenance := router.Group("/maintenance")
	{
		maintenance.GET("/history/:vehicleId", maintenanceHandler.GetHistory)
		maintenance.GET("/reminders/:vehicleId", maintenanceHandler.GetReminders)
		maintenance.POST("/:vehicleId", maintenanceHandler.AddMaintenance)
		maintenance.DELETE("/:eventId", maintenanceHandler.DeleteMaintenance)
	}
	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
