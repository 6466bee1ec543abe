package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/config"
	app "github.com/oksasatya/eventhub/internal/application"
	pginfra "github.com/oksasatya/eventhub/internal/infrastructure/postgres"
	"github.com/oksasatya/eventhub/pkg/helpers"
)

var defaultTemplates = []app.CreateTemplateInput{
	{
		Name:             "ticket_issued",
		Description:      "Sent when a ticket is issued after payment",
		NotificationType: "TICKET_ISSUED",
		Channel:          "EMAIL",
		TitleTemplate:    "Your ticket for {{event.name}}",
		BodyTemplate:     "Hi {{user.name}}, your {{ticket.type}} ticket is ready. Show code {{ticket.qr_code}} at the door.",
		HTMLTemplate:     "<p>Hi {{user.name}},</p><p>Your <strong>{{ticket.type}}</strong> ticket for {{event.name}} is ready.</p><p>Code: <code>{{ticket.qr_code}}</code></p>",
	},
	{
		Name:             "payment_completed",
		Description:      "In-app receipt for a completed payment",
		NotificationType: "PAYMENT_COMPLETED",
		Channel:          "IN_APP",
		TitleTemplate:    "Payment received",
		BodyTemplate:     "We received {{payment.amount}} {{payment.currency}} for {{event.name}}.",
	},
	{
		Name:             "group_invitation",
		Description:      "Invitation to join a group",
		NotificationType: "GROUP_INVITATION",
		Channel:          "EMAIL",
		TitleTemplate:    "{{inviter.name}} invited you to {{group.name}}",
		BodyTemplate:     "Join {{group.name}} for {{event.name}} with code {{group.invitation_code}}.",
		HTMLTemplate:     "<p>{{inviter.name}} invited you to <strong>{{group.name}}</strong>.</p><p>Code: <code>{{group.invitation_code}}</code></p>",
	},
	{
		Name:             "event_reminder",
		Description:      "Push reminder before the event starts",
		NotificationType: "EVENT_REMINDER",
		Channel:          "PUSH",
		TitleTemplate:    "{{event.name}} starts soon",
		BodyTemplate:     "Doors open at {{event.starts_at}}. See you there!",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	svc := app.NewNotificationService(pginfra.NewNotificationTemplateRepository(pool), nil, nil, nil, logger)
	for _, in := range defaultTemplates {
		_, err := svc.CreateTemplate(ctx, in)
		switch {
		case errors.Is(err, app.ErrTemplateNameTaken):
			logger.WithField("name", in.Name).Info("template already seeded")
		case err != nil:
			log.Fatalf("seed template %s: %v", in.Name, err)
		default:
			helpers.LogInfo(logger, "template seeded", logrus.Fields{"name": in.Name, "channel": in.Channel})
		}
	}
}
