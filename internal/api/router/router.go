package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/event"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/notification"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/handlers/template"
)

func New(events *event.Handler, notifications *notification.Handler, templates *template.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/v1/notifications")
	{
		api.POST("/events/dispatch/", events.Dispatch)
		api.POST("/templates/preview", templates.Preview)

		api.GET("", notifications.ListByCorrelation)
		api.GET("/:id", notifications.GetStatus)
		api.POST("/:id/delivered", notifications.MarkDelivered)
	}

	return e
}
