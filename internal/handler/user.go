package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
)

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "login successful", session)
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	session, err := h.authService.Register(c.Request.Context(), domain.Registration{
		Fullname: req.Fullname,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "registration successful", session)
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	users, count, err := h.userService.Participants(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, dto.ToUserResponse(u))
	}

	h.respond(c, http.StatusOK, "participants fetched", dto.ParticipantsResponse{
		Participants: res,
		Count:        count,
	})
}

// ListUserEvents returns the events the user is enrolled in, derived from
// the enrollment table.
func (h *Handler) ListUserEvents(c *ginext.Context) {
	events, err := h.eventService.ListByParticipant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "events fetched", ginext.H{"data": events, "count": len(events)})
}
