package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
)

// storageError logs err with the name of the failing repository method and
// converts it to the *app.Error returned to services. The driver error never
// leaves this package: constraint violations become conflicts or invalid
// input, everything else an internal error wrapping only a package sentinel.
func (db *DB) storageError(ctx context.Context, funcName string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *app.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	class := Unclassified
	if db.errorClassificator != nil {
		class = db.errorClassificator.Classify(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Stringer("classification", class).
		Msg("storage operation failed")

	switch {
	case class == UniqueViolation:
		return app.NewResourceConflictError("")
	case class == ForeignKeyViolation:
		return app.NewInvalidInputError(app.MsgDeckReferenceInvalid)
	case errors.Is(err, ErrUnknownColumn):
		return app.NewInvalidInputError(app.MsgUnknownQueryKey)
	}

	return app.NewInternalServerError(sentinelOf(err))
}

// sentinelOf returns the first package sentinel err wraps so the internal
// error keeps a matchable cause without exposing driver details.
func sentinelOf(err error) error {
	for _, sentinel := range []error{
		ErrAcquiringConnection,
		ErrBuildingSQLQuery,
		ErrBeginningTransaction,
		ErrCommitingTransaction,
		ErrExecutingStatement,
		ErrScanningRow,
		ErrScanningRows,
		ErrRecordMissingAfterWrite,
		ErrExecutingQuery,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrExecutingQuery
}
