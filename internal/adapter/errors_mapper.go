// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/go-resty/resty/v2"
)

const (
	opSignUp                 = "SignUp"
	opConfirmSignUp          = "ConfirmSignUp"
	opResendConfirmationCode = "ResendConfirmationCode"
	opAdminGetUser           = "AdminGetUser"
)

// mapCognitoError classifies an error returned by the Cognito client for
// operation op. Unknown client faults become [ErrRequestRejected]; everything
// else that is not an API error becomes [ErrProviderUnavailable].
func mapCognitoError(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		codeMismatch *types.CodeMismatchException
		codeExpired  *types.ExpiredCodeException
		notFound     *types.UserNotFoundException
		notAuth      *types.NotAuthorizedException
		userExists   *types.UsernameExistsException
		badPassword  *types.InvalidPasswordException
		badParameter *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &codeMismatch):
		return &ProviderError{Err: ErrCodeMismatch, Message: codeMismatch.ErrorMessage()}
	case errors.As(err, &codeExpired):
		return &ProviderError{Err: ErrCodeExpired, Message: codeExpired.ErrorMessage()}
	case errors.As(err, &notFound):
		return &ProviderError{Err: ErrUserNotFound, Message: notFound.ErrorMessage()}
	case errors.As(err, &notAuth) && op == opConfirmSignUp:
		// confirming an account that is already CONFIRMED
		return &ProviderError{Err: ErrAlreadyConfirmed, Message: notAuth.ErrorMessage()}
	case errors.As(err, &userExists):
		return &ProviderError{Err: ErrUsernameExists, Message: userExists.ErrorMessage()}
	case errors.As(err, &badPassword):
		return &ProviderError{Err: ErrInvalidPassword, Message: badPassword.ErrorMessage()}
	case errors.As(err, &badParameter):
		return &ProviderError{Err: ErrInvalidParameter, Message: badParameter.ErrorMessage()}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorFault() == smithy.FaultServer {
			return &ProviderError{Err: ErrProviderUnavailable, Message: apiErr.ErrorMessage()}
		}
		return &ProviderError{Err: ErrRequestRejected, Message: apiErr.ErrorMessage()}
	}

	return fmt.Errorf("%w: %s: %w", ErrProviderUnavailable, op, err)
}

// mapHTTPError turns a non-2xx generator response into an error wrapping
// [ErrGeneratorFailed] with the API's own error message when present.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(resp.Body()))
	if apiErr, ok := resp.Error().(*geminiErrorResponse); ok && apiErr.Error.Message != "" {
		msg = apiErr.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrGeneratorFailed, resp.StatusCode(), msg)
}
