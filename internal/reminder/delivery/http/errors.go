package http

import (
	"errors"
	"net/http"

	"reminder-extractor/internal/export"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/internal/reminder/repository"
	"reminder-extractor/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reminder.ErrNoTasks),
		errors.Is(err, reminder.ErrEmptyListName),
		errors.Is(err, reminder.ErrInvalidWindow),
		errors.Is(err, model.ErrInvalidTasks),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, export.ErrUnknownLayout):
		return response.WrapHTTPError(http.StatusBadRequest, err)
	case errors.Is(err, repository.ErrListNotFound):
		return response.WrapHTTPError(http.StatusNotFound, err)
	case errors.Is(err, reminder.ErrExportNotSupport):
		return response.WrapHTTPError(http.StatusNotImplemented, err)
	case errors.Is(err, repository.ErrFailedToCreate),
		errors.Is(err, repository.ErrFailedToList):
		return response.WrapHTTPError(http.StatusBadGateway, err)
	default:
		return response.WrapHTTPError(http.StatusInternalServerError, err)
	}
}
