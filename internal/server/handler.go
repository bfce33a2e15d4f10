package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledgerwatch/log/v3"

	"hufftext/pkg"
)

// MaxUpload caps the size of an uploaded file; the whole file is held in
// memory while it is coded.
const MaxUpload = 32 << 20

type Handler struct {
	logger log.Logger
}

func NewHandler(l log.Logger) *Handler {
	return &Handler{logger: l}
}

func (h *Handler) Compress(c *gin.Context) {
	name, data, ok := h.readUpload(c)
	if !ok {
		return
	}
	format, err := pkg.ParseFormat(c.PostForm("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, stats, err := pkg.CompressBytes(data, pkg.CompressOptions{Format: format})
	if err != nil {
		h.fail(c, "compress", name, err)
		return
	}
	h.logger.Info("compressed upload", "file", name, "format", format, "raw", stats.RawSize, "compressed", stats.CompressedSize)
	attach(c, name+".huff", out)
}

func (h *Handler) Decompress(c *gin.Context) {
	name, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	out, err := pkg.DecompressBytes(data)
	if err != nil {
		h.fail(c, "decompress", name, err)
		return
	}
	h.logger.Info("decompressed upload", "file", name, "size", len(out))
	attach(c, strings.TrimSuffix(name, ".huff"), out)
}

func (h *Handler) readUpload(c *gin.Context) (string, []byte, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field \"file\""})
		return "", nil, false
	}
	if fh.Size > MaxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("upload exceeds %d bytes", MaxUpload)})
		return "", nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUpload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", nil, false
	}
	return filepath.Base(fh.Filename), data, true
}

func (h *Handler) fail(c *gin.Context, op, name string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pkg.ErrEmptyInput):
		status = http.StatusBadRequest
	case errors.Is(err, pkg.ErrMalformedTable),
		errors.Is(err, pkg.ErrTruncatedStream),
		errors.Is(err, pkg.ErrCorruptStream),
		errors.Is(err, pkg.ErrEmptyTable):
		status = http.StatusUnprocessableEntity
	}
	h.logger.Warn(op+" failed", "file", name, "status", status, "err", err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func attach(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/octet-stream", data)
}
