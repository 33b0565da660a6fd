package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
)

func (h *Handler) CreateTicket(c *ginext.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), domain.CreateTicketInput{
		EventID: req.EventID,
		UserID:  req.UserID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "ticket created", dto.ToTicketResponse(ticket))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	tickets, count, err := h.ticketService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		res = append(res, dto.ToTicketResponse(t))
	}

	h.respond(c, http.StatusOK, "tickets fetched", dto.TicketListResponse{Data: res, Count: count})
}

func (h *Handler) GetTicket(c *ginext.Context) {
	ticket, err := h.ticketService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "ticket fetched", dto.ToTicketResponse(ticket))
}

func (h *Handler) UpdateTicket(c *ginext.Context) {
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	in := domain.UpdateTicketInput{
		CancellationReason: req.CancellationReason,
		CheckIn:            req.CheckIn,
	}
	if req.Status != nil {
		status := domain.TicketStatus(*req.Status)
		in.Status = &status
	}

	ticket, err := h.ticketService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "ticket updated", dto.ToTicketResponse(ticket))
}

func (h *Handler) DeleteTicket(c *ginext.Context) {
	if err := h.ticketService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "ticket deleted", nil)
}
