package handlers

import (
	"errors"
	"net/http"

	bookingRepo "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	providerRepo "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	referenceRepo "github.com/sud2610/set-u-free-sub000/database/repository/reference"
	reviewRepo "github.com/sud2610/set-u-free-sub000/database/repository/review"
	serviceRepo "github.com/sud2610/set-u-free-sub000/database/repository/service"
	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/services/booking"
	"github.com/sud2610/set-u-free-sub000/services/catalog"
	"github.com/sud2610/set-u-free-sub000/services/user"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service-layer errors onto the response envelope.
// Unknown errors are logged and answered with a generic 500 so raw failures
// never reach the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrAccountDisabled):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrFirebaseUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, user.ErrEmailClaimMissing):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrIllegalTransition):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrForbidden), errors.Is(err, catalog.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	default:
		utils.GetLogger().Error("Unhandled service error", zap.Error(err), zap.String("path", c.FullPath()))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, userRepo.ErrNotFound) ||
		errors.Is(err, providerRepo.ErrNotFound) ||
		errors.Is(err, serviceRepo.ErrNotFound) ||
		errors.Is(err, bookingRepo.ErrNotFound) ||
		errors.Is(err, reviewRepo.ErrNotFound) ||
		errors.Is(err, referenceRepo.ErrNotFound)
}
