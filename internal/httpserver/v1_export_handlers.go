package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adittyaff/pelanggan-mapper/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleV1ExportXLSX downloads the filtered records as an Excel workbook
// GET /api/v1/export/xlsx  (same filter query params as /map/pins)
func (s *Server) handleV1ExportXLSX(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot()
	records := filter.Apply(snap.Records)

	workbook, err := export.Workbook(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
