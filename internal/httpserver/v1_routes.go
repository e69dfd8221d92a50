package httpserver

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/dataset, /api/v1/map, /api/v1/export
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware())

	// Dataset endpoints - upload and snapshot metadata
	ds := v1.Group("/dataset")
	{
		ds.POST("", s.handleV1UploadDataset)
		ds.GET("", s.handleV1DatasetInfo)
	}

	// Map endpoints - everything the map frontend renders
	mp := v1.Group("/map")
	{
		mp.GET("/pins", s.handleV1MapPins)
		mp.GET("/heatmap", s.handleV1MapHeatmap)
		mp.GET("/legend", s.handleV1MapLegend)
		mp.GET("/options", s.handleV1MapOptions)
	}

	// Export endpoints - filtered data downloads
	ex := v1.Group("/export")
	{
		ex.GET("/xlsx", s.handleV1ExportXLSX)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
