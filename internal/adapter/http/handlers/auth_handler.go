package handlers

import (
	"log"
	"net/http"

	request "meshguard_api/internal/adapter/http/dto/request"
	response "meshguard_api/internal/adapter/http/dto/response"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and the caller's profile.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  request.RegisterRequest  true  "payload"
// @Success      201 {object} response.AuthResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		writeError(c, "auth", err)
		return
	}
	log.Printf("[auth][handler] registered user_id=%s", res.User.ID)

	c.JSON(http.StatusCreated, response.FromAuthResult(res))
}

// @Summary      Log in and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  request.LoginRequest  true  "payload"
// @Success      200 {object} response.AuthResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.ResolveEmail(), payload.Password)
	if err != nil {
		writeError(c, "auth", err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200 {object} response.UserResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	user, err := h.usecase.Me(c.Request.Context(), actor.UserID)
	if err != nil {
		writeError(c, "auth", err)
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

// ListUsers is the admin user directory.
//
// @Summary      List users (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.UserResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /admin/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	users, err := h.usecase.ListUsers(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "auth", err)
		return
	}

	c.JSON(http.StatusOK, response.FromUsers(users))
}
