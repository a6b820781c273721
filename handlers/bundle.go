package handlers

import (
	userRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/user"
)

// HandlerBundle groups the endpoint handlers plus the user repository the
// auth middleware needs to resolve sessions.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User     *UserHandler
	Provider *ProviderHandler
	Service  *ServiceHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Meta     *MetaHandler
	Admin    *AdminHandler
	Storage  *StorageHandler
}
