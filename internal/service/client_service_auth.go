package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

type clientAuthService struct {
	adapter   adapter.CatalogAdapter
	session   *session.Session
	viewer    ViewerSource
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(
	catalog adapter.CatalogAdapter,
	sess *session.Session,
	viewer ViewerSource,
	validator validators.Validator,
	log *logger.Logger,
) ClientAuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientAuthService{
		adapter:   catalog,
		session:   sess,
		viewer:    viewer,
		validator: validator,
		logger:    log,
	}
}

func (a *clientAuthService) SignIn(ctx context.Context, creds models.Credentials) error {
	if err := a.validator.Validate(ctx, creds, models.FieldEmail, models.FieldPassword); err != nil {
		return err
	}
	creds.Email = strings.TrimSpace(creds.Email)

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return mapAdapterError(OpSignIn, err)
	}

	if err = a.session.SetToken(ctx, token.Token); err != nil {
		return fmt.Errorf("store auth token: %w", err)
	}

	a.logger.Info().Msg("signed in")
	return nil
}

func (a *clientAuthService) SignUp(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := a.validator.Validate(ctx, creds, models.FieldEmail, models.FieldPassword, models.FieldConfirm); err != nil {
		return models.User{}, err
	}
	creds.Email = strings.TrimSpace(creds.Email)
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" {
		creds.Username, _, _ = strings.Cut(creds.Email, "@")
	}

	user, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.User{}, mapAdapterError(OpSignUp, err)
	}

	a.logger.Info().Str("username", user.Username).Msg("account registered")
	return user, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return a.session.Clear(ctx)
	}

	// the token is dropped locally whatever the server says
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server logout failed")
	}

	if err := a.session.Clear(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *clientAuthService) Username(ctx context.Context) string {
	if a.viewer == nil {
		return ""
	}
	return a.viewer.Username(ctx)
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}
