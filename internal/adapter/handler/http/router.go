package http

import (
	"net/http"

	"github.com/casigo/bikeshare_rental_service/internal/config"

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
	bikeHandler *BikeHandler,
	commentHandler *CommentHandler,
	stationHandler *StationHandler,
	seedHandler *SeedHandler,
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

	// Bikes routes
	bikes := router.Group("/bikes")
	{
		bikes.GET("", bikeHandler.ListBikes)
		bikes.POST("", bikeHandler.CreateBike)
		bikes.DELETE("/:id", bikeHandler.DeleteBike)
		bikes.DELETE("", bikeHandler.DeleteAllBikes)
	}

	// Comments routes
	comments := router.Group("/comments")
	{
		comments.POST("", commentHandler.CreateComment)
		comments.GET("", commentHandler.ListComments)
	}

	// Stations routes
	stations := router.Group("/stations")
	{
		stations.POST("", stationHandler.CreateStation)
		stations.GET("", stationHandler.ListStations)
	}

	// Seed route
	router.POST("/seed", seedHandler.Populate)

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
