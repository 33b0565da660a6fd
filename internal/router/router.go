package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Register(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	ListUserEvents(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEventRoster(c *ginext.Context)
	AddParticipant(c *ginext.Context)
	RemoveParticipant(c *ginext.Context)
	GetAvailableSpots(c *ginext.Context)

	CreateLocation(c *ginext.Context)
	ListLocations(c *ginext.Context)
	GetLocation(c *ginext.Context)
	UpdateLocation(c *ginext.Context)
	DeleteLocation(c *ginext.Context)

	CreateTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	GetTicket(c *ginext.Context)
	UpdateTicket(c *ginext.Context)
	DeleteTicket(c *ginext.Context)
}

// InitRouter wires the route table. auth guards every /api route except
// login/register; organizer additionally guards mutation of events and
// locations plus the participant roster.
func InitRouter(mode string, h Handler, auth, organizer ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// Auth is delegated to the external auth service; these two routes are
	// the only unauthenticated ones.
	api.POST("/users/login", h.Login)
	api.POST("/users/register", h.Register)

	authed := api.Group("", auth)
	{
		users := authed.Group("/users")
		{
			users.GET("/participants", organizer, h.ListParticipants)
			users.GET("/:id/events", h.ListUserEvents)
		}

		events := authed.Group("/events")
		{
			events.POST("", organizer, h.CreateEvent)
			events.GET("", h.ListEvents)
			events.GET("/:id", h.GetEvent)
			events.PUT("/:id", organizer, h.UpdateEvent)
			events.DELETE("/:id", organizer, h.DeleteEvent)

			events.GET("/:id/participants", h.GetEventRoster)
			events.POST("/:id/participants/:userId", h.AddParticipant)
			events.DELETE("/:id/participants/:userId", h.RemoveParticipant)
			events.GET("/:id/available-spots", h.GetAvailableSpots)
		}

		locations := authed.Group("/locations")
		{
			locations.POST("", organizer, h.CreateLocation)
			locations.GET("", h.ListLocations)
			locations.GET("/:id", h.GetLocation)
			locations.PUT("/:id", organizer, h.UpdateLocation)
			locations.DELETE("/:id", organizer, h.DeleteLocation)
		}

		tickets := authed.Group("/tickets")
		{
			tickets.POST("", h.CreateTicket)
			tickets.GET("", h.ListTickets)
			tickets.GET("/:id", h.GetTicket)
			tickets.PUT("/:id", h.UpdateTicket)
			tickets.DELETE("/:id", h.DeleteTicket)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
