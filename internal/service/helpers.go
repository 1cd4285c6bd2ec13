package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/internal/validators"
)

// singleEntry returns the only key and value of query.
func singleEntry(query map[string]any) (string, any, error) {
	if len(query) != 1 {
		return "", nil, app.NewInvalidInputError(app.MsgSingleQueryKeyAllowed)
	}

	for key, value := range query {
		return key, value, nil
	}
	return "", nil, app.NewInvalidInputError(app.MsgSingleQueryKeyAllowed)
}

// payloadID coerces the single value of a loosely typed delete payload such
// as {"id": "3"} into an id.
func payloadID(payload map[string]any) (int64, error) {
	_, value, err := singleEntry(payload)
	if err != nil {
		return 0, err
	}

	id, err := validators.ParseID(value)
	if err != nil {
		return 0, app.NewInvalidInputError(app.MsgInvalidIDInput)
	}
	return id, nil
}

// authorizeOwner fails with an authorization error when ctx carries an
// authenticated user other than ownerID. Calls without a user in ctx are
// not checked.
func authorizeOwner(ctx context.Context, funcName string, ownerID int64) error {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || callerID == ownerID {
		return nil
	}

	logger.FromContext(ctx).Warn().
		Str("func", funcName).
		Int64("caller_id", callerID).
		Int64("owner_id", ownerID).
		Msg("caller does not own the resource")
	return app.NewAuthorizationError(app.MsgAccessDenied)
}

// logFailure logs err unless it is a business rejection already explained by
// its message.
func logFailure(ctx context.Context, funcName string, err error) {
	if errors.Is(err, app.ErrInternalServer) {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("storage call failed")
		return
	}
	logger.FromContext(ctx).Debug().Str("func", funcName).Str("reason", err.Error()).Msg("request rejected")
}
