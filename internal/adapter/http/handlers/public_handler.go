package handlers

import (
	"net/http"

	request "meshguard_api/internal/adapter/http/dto/request"
	response "meshguard_api/internal/adapter/http/dto/response"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         public
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

type ServiceAreaHandler struct {
	usecase usecase.IServiceAreaUseCase
}

func NewServiceAreaHandler(uc usecase.IServiceAreaUseCase) *ServiceAreaHandler {
	return &ServiceAreaHandler{usecase: uc}
}

// @Summary      Check whether a location is served
// @Tags         public
// @Produce      json
// @Param        location  query  string  true  "locality or address"
// @Success      200 {object} response.ServiceAreaResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /service-area [get]
func (h *ServiceAreaHandler) Check(c *gin.Context) {
	res, err := h.usecase.Check(c.Query("location"))
	if err != nil {
		writeError(c, "service_area", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceArea(res))
}

// ContactHandler takes public contact-form messages; listing them is admin only.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// @Summary      Leave a contact message
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ContactRequest  true  "payload"
// @Success      201 {object} response.ContactMessageResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	msg, err := h.usecase.Submit(c.Request.Context(), usecase.ContactMessageInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	})
	if err != nil {
		writeError(c, "contact", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromContactMessage(msg))
}

// @Summary      List contact messages (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.ContactMessageResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /admin/contact-messages [get]
func (h *ContactHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	msgs, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "contact", err)
		return
	}

	c.JSON(http.StatusOK, response.FromContactMessages(msgs))
}

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// @Summary      Business stats (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200 {object} response.StatsResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "admin", err)
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}
