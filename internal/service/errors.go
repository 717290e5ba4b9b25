package service

import (
	"errors"

	"github.com/MKhiriev/go-tabpfn-client/internal/app"
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New(app.MsgWrongCredentials)
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrEmailAlreadyRegistered  = errors.New(app.MsgEmailAlreadyRegistered)
	ErrTrainSetNotFound        = errors.New(app.MsgTrainSetNotFound)

	ErrLoginOnServer    = errors.New("error logging in on the service")
	ErrRegisterOnServer = errors.New("error registering on the service")
	ErrEncodingDataset  = errors.New("error encoding dataset")
	ErrEncodingParams   = errors.New("error encoding estimator parameters")
)
