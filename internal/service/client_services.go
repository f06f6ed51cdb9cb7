package service

import (
	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/internal/validators"
)

type ClientServices struct {
	CatService  ClientCatService
	AuthService ClientAuthService
	Validator   *validators.FormValidator
	Guard       *session.Guard
}

func NewClientServices(
	catalog adapter.CatalogAdapter,
	sess *session.Session,
	currentUser *session.CurrentUser,
	validator *validators.FormValidator,
	log *logger.Logger,
) *ClientServices {
	if log == nil {
		log = logger.Nop()
	}

	catLog := log.GetChildLogger("cat-service")
	authLog := log.GetChildLogger("auth-service")

	return &ClientServices{
		CatService:  NewClientCatService(catalog, currentUser, catLog),
		AuthService: NewClientAuthService(catalog, sess, currentUser, validator, authLog),
		Validator:   validator,
		Guard:       session.NewGuard(sess),
	}
}
