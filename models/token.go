// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Claims is the identity claim set carried by an access token.
// It deliberately holds nothing but the user id and email.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Principal converts verified claims into the request principal.
func (c Claims) Principal() Principal {
	return Principal{UserID: c.UserID, Email: c.Email}
}

// Token is the response returned by registration and login.
type Token struct {
	// AccessToken is the compact signed JWT (header.payload.signature).
	AccessToken string `json:"access_token"`
}

// String returns the compact token. It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.AccessToken
}
