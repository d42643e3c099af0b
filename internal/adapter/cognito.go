// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

const emailAttribute = "email"

// cognitoAPI is the subset of *cognitoidentityprovider.Client used here.
type cognitoAPI interface {
	SignUp(ctx context.Context, in *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, in *cognitoidentityprovider.ResendConfirmationCodeInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ResendConfirmationCodeOutput, error)
	AdminGetUser(ctx context.Context, in *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error)
}

type cognitoIdentityProvider struct {
	client       cognitoAPI
	userPoolID   string
	clientID     string
	clientSecret string
	logger       *logger.Logger
}

// NewCognitoIdentityProvider builds a Cognito client from static credentials.
// A non-empty cfg.Endpoint replaces the regional endpoint. The client never
// retries: every call is a single attempt bound to the request context.
func NewCognitoIdentityProvider(ctx context.Context, cfg config.Cognito, log *logger.Logger) (IdentityProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := cognitoidentityprovider.NewFromConfig(awsCfg, func(o *cognitoidentityprovider.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &cognitoIdentityProvider{
		client:       client,
		userPoolID:   cfg.UserPoolID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       log,
	}, nil
}

func (c *cognitoIdentityProvider) secretHash(username string) *string {
	return aws.String(utils.SecretHash(username, c.clientID, c.clientSecret))
}

func (c *cognitoIdentityProvider) SignUp(ctx context.Context, username, password, email string) (models.SignUpResult, error) {
	out, err := c.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(c.clientID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		SecretHash: c.secretHash(username),
		UserAttributes: []types.AttributeType{
			{Name: aws.String(emailAttribute), Value: aws.String(email)},
		},
	})
	if err != nil {
		return models.SignUpResult{}, mapCognitoError(opSignUp, err)
	}

	c.logger.Debug().Str("username", username).Msg("cognito sign-up accepted")

	return models.SignUpResult{
		UserSub:   aws.ToString(out.UserSub),
		Confirmed: out.UserConfirmed,
		Delivery:  codeDelivery(out.CodeDeliveryDetails),
	}, nil
}

func (c *cognitoIdentityProvider) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := c.client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		SecretHash:       c.secretHash(username),
	})
	if err != nil {
		return mapCognitoError(opConfirmSignUp, err)
	}

	c.logger.Debug().Str("username", username).Msg("cognito sign-up confirmed")
	return nil
}

func (c *cognitoIdentityProvider) ResendConfirmationCode(ctx context.Context, username string) (models.CodeDelivery, error) {
	out, err := c.client.ResendConfirmationCode(ctx, &cognitoidentityprovider.ResendConfirmationCodeInput{
		ClientId:   aws.String(c.clientID),
		Username:   aws.String(username),
		SecretHash: c.secretHash(username),
	})
	if err != nil {
		return models.CodeDelivery{}, mapCognitoError(opResendConfirmationCode, err)
	}

	return codeDelivery(out.CodeDeliveryDetails), nil
}

func (c *cognitoIdentityProvider) GetUserStatus(ctx context.Context, username string) (models.AccountStatus, error) {
	out, err := c.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return models.AccountUnknown, nil
		}
		return models.AccountUnknown, mapCognitoError(opAdminGetUser, err)
	}

	return accountStatus(out.UserStatus), nil
}

// accountStatus is the only place a Cognito status string is interpreted.
// Anything short of CONFIRMED (UNCONFIRMED, FORCE_CHANGE_PASSWORD,
// RESET_REQUIRED, ...) still accepts new codes.
func accountStatus(status types.UserStatusType) models.AccountStatus {
	if status == types.UserStatusTypeConfirmed {
		return models.AccountConfirmed
	}
	return models.AccountUnconfirmed
}

func codeDelivery(details *types.CodeDeliveryDetailsType) models.CodeDelivery {
	if details == nil {
		return models.CodeDelivery{}
	}
	return models.CodeDelivery{
		Destination: aws.ToString(details.Destination),
		Medium:      string(details.DeliveryMedium),
	}
}
