package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		op   operation
		err  error
		want error
	}{
		{name: "nil", op: opAuthenticated, err: nil, want: nil},
		{name: "login unauthorized", op: opLogin, err: fmt.Errorf("%w: x", adapter.ErrUnauthorized), want: ErrWrongPassword},
		{name: "token unauthorized", op: opAuthenticated, err: fmt.Errorf("%w: x", adapter.ErrUnauthorized), want: ErrTokenIsExpiredOrInvalid},
		{name: "forbidden", op: opAuthenticated, err: fmt.Errorf("%w: x", adapter.ErrForbidden), want: ErrTokenIsExpiredOrInvalid},
		{name: "predict not found", op: opPredict, err: fmt.Errorf("%w: x", adapter.ErrNotFound), want: ErrTrainSetNotFound},
		{name: "other not found", op: opAuthenticated, err: fmt.Errorf("%w: x", adapter.ErrNotFound), want: adapter.ErrNotFound},
		{name: "register conflict", op: opRegister, err: fmt.Errorf("%w: x", adapter.ErrConflict), want: ErrEmailAlreadyRegistered},
		{name: "bad request", op: opAuthenticated, err: fmt.Errorf("%w: x", adapter.ErrBadRequest), want: ErrInvalidDataProvided},
		{name: "login gateway", op: opLogin, err: fmt.Errorf("%w: x", adapter.ErrBadGateway), want: ErrLoginOnServer},
		{name: "register 500", op: opRegister, err: fmt.Errorf("%w: x", adapter.ErrInternalServerError), want: ErrRegisterOnServer},
		{name: "passthrough", op: opAuthenticated, err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.op, tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "token revoked", extractBody(fmt.Errorf("%w: token revoked", adapter.ErrUnauthorized)))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
}
