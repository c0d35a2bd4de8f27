package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/internal/models"
)

// toConnectError maps a domain error onto a Connect code and logs it.
// Caller mistakes are logged at warn, everything else at error.
func toConnectError(op string, err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		code = connect.CodeInvalidArgument
	case errors.Is(err, models.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, models.ErrInvalidState):
		code = connect.CodeFailedPrecondition
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	slog.Warn(op+" rejected", "code", code, "error", err)
	return connect.NewError(code, err)
}
