package user

import "errors"

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("email is already registered")

// ErrAccountDisabled is returned when the account's active flag is off.
var ErrAccountDisabled = errors.New("account is disabled")

// ErrFirebaseUnavailable is returned when ID-token sign-in is requested but
// no Firebase credentials are configured.
var ErrFirebaseUnavailable = errors.New("firebase sign-in is not configured")

// ErrEmailClaimMissing is returned when an ID token carries no email claim.
// Accounts are keyed by a unique email, so such tokens cannot sign in.
var ErrEmailClaimMissing = errors.New("identity token has no email claim")
