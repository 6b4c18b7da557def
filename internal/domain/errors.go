package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDocument    = errors.New("invalid document")
	ErrUnknownConsulta    = errors.New("unknown consultation type")
	ErrConsultaInFlight   = errors.New("a consultation is already in progress")
	ErrReportNotArchived  = errors.New("report not found in archive")
)
