package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adittyaff/pelanggan-mapper/internal/dataset"
)

// handleV1UploadDataset replaces the current snapshot with an uploaded file
// POST /api/v1/dataset  (multipart field "file", .csv or .xlsx)
func (s *Server) handleV1UploadDataset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	if fileHeader.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file exceeds size limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	snap, err := s.store.LoadReader(f, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("dataset uploaded",
		zap.String("source", snap.Source),
		zap.Int("records", len(snap.Records)),
		zap.Int("skipped", snap.Skipped))

	c.JSON(http.StatusOK, gin.H{"data": snapshotMeta(snap)})
}

// handleV1DatasetInfo returns metadata about the current snapshot
// GET /api/v1/dataset
func (s *Server) handleV1DatasetInfo(c *gin.Context) {
	snap := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"data": snapshotMeta(snap),
		"meta": gin.H{
			"facets": dataset.FacetsOf(snap.Records),
		},
	})
}

func snapshotMeta(snap *dataset.Snapshot) gin.H {
	var loadedAt *string
	if !snap.LoadedAt.IsZero() {
		v := snap.LoadedAt.Format(time.RFC3339)
		loadedAt = &v
	}
	return gin.H{
		"source":        snap.Source,
		"records":       len(snap.Records),
		"skipped":       snap.Skipped,
		"status_column": snap.StatusColumn,
		"loaded_at":     loadedAt,
	}
}
