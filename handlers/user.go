package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/user"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, authentication and profile management.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload: "+err.Error())
		return
	}
	resp, err := h.Service.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// FirebaseSignInHandler handles POST /api/users/firebase. The client sends a
// Firebase ID token; the server verifies it and issues a native session.
func (h *UserHandler) FirebaseSignInHandler(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "idToken is required")
		return
	}
	resp, err := h.Service.FirebaseSignIn(req.IDToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// SignOutHandler handles POST /api/users/logout for the authenticated user.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	if err := h.Service.SignOut(actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Signed out"})
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	u, err := h.Service.GetUserByID(actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// GetUserByIDHandler handles GET /api/users/:id. Only the user themselves or
// an admin may read a profile.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	actorID, role := currentActor(c)
	if actorID != id && role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Cannot read another user's profile")
		return
	}
	u, err := h.Service.GetUserByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// UpdateUserHandler handles PUT /api/users/:id. Role and active changes are
// stripped here; those go through the admin surface.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id := c.Param("id")
	actorID, role := currentActor(c)
	if actorID != id && role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Cannot update another user's profile")
		return
	}
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	if role != models.RoleAdmin {
		upd.Role = nil
		upd.Active = nil
	}
	u, err := h.Service.UpdateUser(id, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// UpdatePasswordHandler handles PUT /api/users/:id/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	id := c.Param("id")
	actorID, _ := currentActor(c)
	if actorID != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot change another user's password")
		return
	}
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Current and new password are required")
		return
	}
	if err := h.Service.UpdateUserPassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}

// DeleteUserHandler handles DELETE /api/users/:id (self-service account
// deletion; admins use their own surface).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	actorID, role := currentActor(c)
	if actorID != id && role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Cannot delete another user's account")
		return
	}
	if err := h.Service.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
