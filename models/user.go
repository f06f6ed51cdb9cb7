// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account profile returned by GET /users/me/.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Credentials is what the user types into the sign-in and sign-up forms.
type Credentials struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`

	// Confirm is only used by the sign-up form and never transmitted.
	Confirm string `json:"-"`
}

// AuthToken is the body returned by the token login endpoint.
type AuthToken struct {
	Token string `json:"auth_token"`
}
