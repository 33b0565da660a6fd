package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		h.badRequest(c, "invalid date format, expected RFC3339")
		return
	}

	details, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		SportType:   req.SportType,
		Date:        date,
		LocationID:  req.LocationID,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "event created", dto.ToEventResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.eventService.List(c.Request.Context(), domain.ListEventsInput{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "events fetched", dto.ToEventPageResponse(result))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	details, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event fetched", dto.ToEventResponse(details))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	in := domain.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		SportType:   req.SportType,
		LocationID:  req.LocationID,
		Capacity:    req.Capacity,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			h.badRequest(c, "invalid date format, expected RFC3339")
			return
		}
		in.Date = &date
	}

	details, err := h.eventService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event updated", dto.ToEventResponse(details))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "event deleted", nil)
}

func (h *Handler) GetEventRoster(c *ginext.Context) {
	roster, err := h.eventService.Roster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "participants fetched", dto.ToRosterResponse(roster))
}

func (h *Handler) AddParticipant(c *ginext.Context) {
	details, err := h.eventService.AddParticipant(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "participant added", dto.ToEventResponse(details))
}

func (h *Handler) RemoveParticipant(c *ginext.Context) {
	details, err := h.eventService.RemoveParticipant(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "participant removed", dto.ToEventResponse(details))
}

func (h *Handler) GetAvailableSpots(c *ginext.Context) {
	spots, err := h.eventService.AvailableSpots(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "available spots fetched", ginext.H{"availableSpots": spots})
}
