package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/pkg/response"
)

// ExtractText godoc
// @Summary     Extract tasks from text
// @Description Sends free text to the model and returns the validated tasks.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractTextReq true "Text to extract from"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No usable tasks in the model output"
// @Failure     502 {object} response.Resp "Model endpoint error"
// @Failure     503 {object} response.Resp "Model endpoint unreachable"
// @Router      /api/v1/extract/text [POST]
func (h *handler) ExtractText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExtractText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExtractResp(out))
}

// ExtractDocument godoc
// @Summary     Extract tasks from documents
// @Description Uploads one or more PDFs or images. Documents are processed in order; one failing document does not stop the rest unless stop_on_error is set.
// @Tags        Extraction
// @Accept      multipart/form-data
// @Produce     json
// @Param       file          formData file   true  "Document (repeat for several)"
// @Param       model         formData string false "Model override"
// @Param       stop_on_error formData bool   false "Stop at the first failing document"
// @Success     200 {object} extractDocumentsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No usable tasks in any document"
// @Failure     503 {object} response.Resp "Model endpoint unreachable"
// @Router      /api/v1/extract/document [POST]
func (h *handler) ExtractDocument(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.saveUploads(c)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			response.Error(c, response.WrapHTTPError(http.StatusRequestEntityTooLarge, err), nil)
			return
		}
		response.Error(c, err, nil)
		return
	}
	defer u.cleanup()

	stopOnError, _ := strconv.ParseBool(c.PostForm("stop_on_error"))
	out, err := h.uc.ExtractDocuments(ctx, extraction.ExtractDocumentsInput{
		Paths:       u.paths,
		Model:       c.PostForm("model"),
		StopOnError: stopOnError,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractDocuments: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	// nothing usable at all: report the first failure with its status
	if out.Succeeded == 0 {
		for _, r := range out.Results {
			if r.Err != nil {
				response.Error(c, h.mapError(r.Err), nil)
				return
			}
		}
	}

	response.OK(c, newExtractDocumentsResp(out, u.names))
}

// Process godoc
// @Summary     Run an action on text or documents
// @Description extract-tasks, summarize, custom (with prompt) or a quick action id. Send JSON for text or multipart with files for documents.
// @Tags        Extraction
// @Accept      json,multipart/form-data
// @Produce     json
// @Param       body body processReq true "Action and input"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unusable model output"
// @Failure     503 {object} response.Resp "Model endpoint unreachable"
// @Router      /api/v1/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, u, err := h.processProcessReq(c)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			response.Error(c, response.WrapHTTPError(http.StatusRequestEntityTooLarge, err), nil)
			return
		}
		response.Error(c, err, nil)
		return
	}
	defer u.cleanup()

	out, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: action=%s err=%v", req.Action, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProcessResp(out))
}

// Models godoc
// @Summary     List models
// @Description Returns the model ids the endpoint serves.
// @Tags        Extraction
// @Produce     json
// @Success     200 {object} modelsResp
// @Failure     503 {object} response.Resp "Model endpoint unreachable"
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	ctx := c.Request.Context()

	models, err := h.uc.Models(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Models: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if models == nil {
		models = []string{}
	}

	response.OK(c, modelsResp{Models: models})
}
