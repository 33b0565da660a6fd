package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/handler/dto"
)

func (h *Handler) CreateLocation(c *ginext.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), domain.CreateLocationInput{
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, "location created", dto.ToLocationResponse(location))
}

func (h *Handler) ListLocations(c *ginext.Context) {
	locations, err := h.locationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		res = append(res, dto.ToLocationResponse(l))
	}

	h.respond(c, http.StatusOK, "locations fetched", ginext.H{"data": res, "count": len(res)})
}

func (h *Handler) GetLocation(c *ginext.Context) {
	location, err := h.locationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "location fetched", dto.ToLocationResponse(location))
}

func (h *Handler) UpdateLocation(c *ginext.Context) {
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), c.Param("id"), domain.UpdateLocationInput{
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "location updated", dto.ToLocationResponse(location))
}

func (h *Handler) DeleteLocation(c *ginext.Context) {
	if err := h.locationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, "location deleted", nil)
}
