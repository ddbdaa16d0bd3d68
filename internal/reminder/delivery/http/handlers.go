package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/export"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/response"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Create godoc
// @Summary     Create reminders
// @Description Creates the given tasks as reminders in a list, creating the list when missing. Reminders are created one at a time; on failure the ones already created are returned in data.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Tasks and target list"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Invalid tasks"
// @Failure     502 {object} response.Resp "Reminder store failed, data holds the partial result"
// @Router      /api/v1/reminders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Commit(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Commit: created=%d pending=%d err=%v", len(out.Created), out.Pending, err)
		response.Error(c, h.mapError(err), map[string]any{"result": newCreateResp(out)})
		return
	}

	response.OK(c, newCreateResp(out))
}

// Export godoc
// @Summary     Export due reminders
// @Description Incomplete reminders due in [from, to) as CSV or XLSX. Defaults to the next 7 days.
// @Tags        Reminders
// @Produce     text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       list   query string false "Reminder list"
// @Param       from   query string false "Start date YYYY-MM-DD (default today)"
// @Param       to     query string false "End date YYYY-MM-DD, exclusive"
// @Param       days   query int    false "Window length when to is not set (default 7)"
// @Param       format query string false "csv or xlsx"
// @Param       layout query string false "split or ledger"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     501 {object} response.Resp "Backend cannot list reminders"
// @Router      /api/v1/reminders/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	from, to, err := req.window(h.loc)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	var buf bytes.Buffer
	out, err := h.uc.Export(ctx, reminder.ExportInput{
		ListName: req.List,
		From:     from,
		To:       to,
		Days:     req.Days,
		Format:   string(format),
		Layout:   req.Layout,
		Output:   &buf,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	contentType := mimeCSV
	if format == export.FormatXLSX {
		contentType = mimeXLSX
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFileName(out.List, format)))
	c.Header("X-Reminder-Count", strconv.Itoa(out.Count))
	c.Header("X-Reminder-Net", strconv.FormatFloat(out.Net, 'f', 2, 64))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
