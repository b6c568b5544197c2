package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/credlens/underwriter/client"
	"github.com/credlens/underwriter/config"
	"github.com/credlens/underwriter/handler"
	"github.com/credlens/underwriter/service"
	"github.com/credlens/underwriter/underwriting"
)

func main() {
	cfg := config.LoadConfig()

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	feedClient := client.NewFeedClient(cfg.FeedBaseURL, cfg.FeedTimeout)

	statementService := service.NewStatementService(
		service.NewPDFProcessor(),
		service.NewRowExtractor(),
		tesseractClient,
		feedClient,
	)

	limitConfig := underwriting.DefaultConfig()
	limitConfig.CurrentAssetMargin = cfg.WorkingCapMargin

	analysisHandler := handler.NewAnalysisHandler(statementService, limitConfig)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Credit Underwriting Engine",
		})
	})

	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/document", analysisHandler.AnalyzeDocument)
			statements.POST("/table", analysisHandler.AnalyzeTable)
			statements.POST("/rows", analysisHandler.AnalyzeRows)
			statements.GET("/feed/:symbol", analysisHandler.AnalyzeFeed)
		}
		api.POST("/limits", analysisHandler.ComputeLimits)
	}

	log.Printf("Starting Credit Underwriting Engine on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
