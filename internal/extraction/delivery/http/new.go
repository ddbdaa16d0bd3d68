package http

import (
	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/pkg/log"
)

const DefaultMaxUploadBytes = 25 << 20

// Handler is the HTTP delivery for the extraction domain.
type Handler interface {
	ExtractText(c *gin.Context)
	ExtractDocument(c *gin.Context)
	Process(c *gin.Context)
	Models(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             extraction.UseCase
	maxUploadBytes int64
}

func New(l log.Logger, uc extraction.UseCase, maxUploadBytes int64) Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &handler{l: l, uc: uc, maxUploadBytes: maxUploadBytes}
}
