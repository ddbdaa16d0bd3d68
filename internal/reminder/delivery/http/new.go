package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/log"
)

type Handler interface {
	Create(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  reminder.UseCase
	loc *time.Location
}

// New creates the reminder HTTP handler. loc is used to read the export
// window dates.
func New(l log.Logger, uc reminder.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{l: l, uc: uc, loc: loc}
}
