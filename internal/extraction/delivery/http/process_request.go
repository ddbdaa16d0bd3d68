package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// upload is a set of multipart files saved to a temporary directory.
type upload struct {
	dir   string
	paths []string
	names map[string]string // saved path -> original file name
}

func (u *upload) cleanup() {
	if u != nil && u.dir != "" {
		os.RemoveAll(u.dir)
	}
}

func (h *handler) processExtractTextReq(c *gin.Context) (extractTextReq, error) {
	var req extractTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// saveUploads stores every file sent under "file" or "files". The caller
// must call cleanup on the result.
func (h *handler) saveUploads(c *gin.Context) (*upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	var files []*multipart.FileHeader
	files = append(files, form.File["file"]...)
	files = append(files, form.File["files"]...)
	if len(files) == 0 {
		return nil, errNoFile
	}

	dir, err := os.MkdirTemp("", "rex-upload-*")
	if err != nil {
		return nil, err
	}
	u := &upload{dir: dir, names: make(map[string]string, len(files))}
	for i, fh := range files {
		if fh.Size > h.maxUploadBytes {
			u.cleanup()
			return nil, fmt.Errorf("%w: %s (%d bytes)", errFileTooLarge, fh.Filename, fh.Size)
		}
		// keep the extension, it selects the MIME type and the OCR path
		dst := filepath.Join(dir, fmt.Sprintf("%03d%s", i, filepath.Ext(fh.Filename)))
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			u.cleanup()
			return nil, err
		}
		u.paths = append(u.paths, dst)
		u.names[dst] = filepath.Base(fh.Filename)
	}
	return u, nil
}

// processProcessReq binds JSON, or multipart form fields plus files.
func (h *handler) processProcessReq(c *gin.Context) (processReq, *upload, error) {
	var req processReq
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		return req, nil, err
	}
	u, err := h.saveUploads(c)
	if errors.Is(err, errNoFile) {
		return req, nil, nil
	}
	if err != nil {
		return req, nil, err
	}
	req.paths = u.paths
	return req, u, nil
}
