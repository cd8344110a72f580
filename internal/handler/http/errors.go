// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while extracting the bearer token from the
// "Authorization" header, before any token validation happens. All of
// them map to 401 at the transport boundary.
var (
	// ErrEmptyAuthorizationHeader signals that the request carried no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader signals that the header could not be
	// split into a scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken signals that the scheme prefix was present but the
	// token value behind it was empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
