package booking_mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoErrUnauthorized         = 13
	mongoErrAuthenticationFailed = 18
)

func isConnectivityError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}

func isPermissionError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == mongoErrUnauthorized || cmdErr.Code == mongoErrAuthenticationFailed
	}
	return false
}
