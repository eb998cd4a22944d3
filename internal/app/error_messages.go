// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the detail strings the vault backend puts into its
// error bodies ({"detail": "..."}). The client matches on them to tell apart
// failures that share an HTTP status.
package app

const (
	// MsgInvalidToken is returned with 401 when the ID token cannot be
	// verified or has expired.
	MsgInvalidToken = "Invalid or expired token"

	// MsgInvalidUser is returned with 401 when the token verifies but
	// carries no usable uid.
	MsgInvalidUser = "Invalid user"

	// MsgInvalidUID is returned with 401 by the write endpoints for the same
	// condition as [MsgInvalidUser].
	MsgInvalidUID = "Invalid or missing user UID."

	// MsgUserNotFound is returned with 404 when the uid has no vault
	// document yet.
	MsgUserNotFound = "User not found"

	// MsgPasswordNotFound is returned with 404 when a password id is
	// unknown.
	MsgPasswordNotFound = "Password not found"

	// MsgAPIKeyNotFound is returned with 404 when an API key id is unknown.
	MsgAPIKeyNotFound = "API key not found"

	// MsgPasswordNotChanged is returned with 404 by edit and delete when the
	// id matched nothing.
	MsgPasswordNotChanged = "Password not found or no changes made"

	// MsgAPIKeyNotChanged is the API key counterpart of
	// [MsgPasswordNotChanged].
	MsgAPIKeyNotChanged = "API key not found or no changes made"

	// MsgMissingID is returned with 400 by edit and delete without an id.
	MsgMissingID = "Missing UID or ID"

	// MsgMissingPasswordFields is returned with 400 when a password lacks
	// title, username or ciphertext.
	MsgMissingPasswordFields = "Missing required fields: title, username, or password."

	// MsgMissingAPIKeyFields is returned with 400 when an API key lacks
	// title or ciphertext.
	MsgMissingAPIKeyFields = "Missing required fields: title or key."
)
