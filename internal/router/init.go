package router

import (
	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/container"
	"github.com/oksasatya/eventhub/internal/infrastructure/cache"
	pginfra "github.com/oksasatya/eventhub/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/eventhub/internal/interface/http"
	"github.com/oksasatya/eventhub/internal/router/modules"
)

// Services holds the application services shared by every module.
type Services struct {
	Payments      *app.PaymentService
	Tickets       *app.TicketService
	Attendees     *app.AttendeeService
	Groups        *app.GroupService
	Notifications *app.NotificationService
}

// BuildServices wires postgres repositories, the redis invitation index and the
// rabbit publisher from the container into application services.
func BuildServices() Services {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	clk := container.GetClock()

	payments := pginfra.NewPaymentRepository(pool)
	tickets := pginfra.NewTicketRepository(pool)

	var index app.InvitationCodeIndex
	if rdb := container.GetRedis(); rdb != nil {
		index = cache.NewInvitationCodes(rdb, container.GetConfig().InviteCodeCacheTTL)
	}
	var pub app.JobPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	return Services{
		Payments:      app.NewPaymentService(payments, clk, nil, logger),
		Tickets:       app.NewTicketService(tickets, payments, clk, nil, logger),
		Attendees:     app.NewAttendeeService(pginfra.NewEventAttendeeRepository(pool), tickets, clk, nil, logger),
		Groups:        app.NewGroupService(pginfra.NewGroupRepository(pool), index, nil, clk, nil, logger),
		Notifications: app.NewNotificationService(pginfra.NewNotificationTemplateRepository(pool), pub, clk, nil, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	RegisterServices(r, BuildServices())
}

// RegisterServices adds one module per aggregate plus the health check.
func RegisterServices(r *Registry, s Services) {
	jwt := container.GetJWT()
	logger := container.GetLogger()

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(s.Payments, logger), jwt))
	r.Add(modules.NewTicketModule(handlers.NewTicketHandler(s.Tickets, logger), jwt))
	r.Add(modules.NewAttendeeModule(handlers.NewAttendeeHandler(s.Attendees, logger), jwt))
	r.Add(modules.NewGroupModule(handlers.NewGroupHandler(s.Groups, logger), jwt))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(s.Notifications, logger), jwt))
}
