package api

import (
	"context"
	"errors"
)

type keyType string

const (
	operatorEmailKey keyType = "operatorEmail"
)

// ctxWithOperatorEmail marks the request as authenticated for the designated
// operator
func ctxWithOperatorEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, operatorEmailKey, email)
}

// ctxGetOperatorEmail retrieves the authenticated operator's email from the
// context
func ctxGetOperatorEmail(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(operatorEmailKey)
	if ctxValue == nil {
		return "", errors.New("operator email not found in context")
	}
	email, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("operator email is not of type `string`")
	}
	return email, nil
}
