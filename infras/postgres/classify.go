package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/lib/pq"

	"todolist/shared/constant"
	"todolist/shared/failure"
)

// Classify maps a driver error onto a failure kind. Errors that are already
// failures pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound(err.Error())
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == constant.PqErrorCodeUndefinedTable:
			return failure.SchemaMissing(err)
		case strings.HasPrefix(string(pqErr.Code), constant.PqErrorClassConnection),
			pqErr.Code == constant.PqErrorCodeAdminShutdown,
			pqErr.Code == constant.PqErrorCodeCannotConnect:
			return failure.Unavailable(err)
		}

		return failure.InternalError(err)
	}

	if isConnectionError(err) {
		return failure.Unavailable(err)
	}

	return failure.InternalError(err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
