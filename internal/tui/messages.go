package tui

import (
	"github.com/MKhiriev/kittygram-client/models"
)

type catalogLoadedMsg struct {
	page models.CatalogPage
}

type detailLoadedMsg struct {
	detail models.CatDetail
	err    error
}

type catDeletedMsg struct {
	err error
}

type editLoadedMsg struct {
	cat models.Cat
	err error
}

type catSavedMsg struct {
	cat models.Cat
	err error
}

type imageChosenMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// signedInMsg is handled by the root model, which resumes navigation at from.
type signedInMsg struct {
	from string
}

type signInFailedMsg struct {
	err error
}

type signedUpMsg struct {
	username string
	err      error
}

// signOutMsg asks the root model to sign out; signedOutMsg reports the result.
type signOutMsg struct{}

type signedOutMsg struct {
	err error
}

type usernameMsg struct {
	username string
}

type clearStatusMsg struct{}
