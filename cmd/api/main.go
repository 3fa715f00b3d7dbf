package main

import (
	"aircnc/internal/auth"
	bookinghandler "aircnc/internal/bookings/handler"
	bookingrepository "aircnc/internal/bookings/repository"
	bookingservice "aircnc/internal/bookings/service"
	bookingvalidator "aircnc/internal/bookings/validator"
	"aircnc/internal/events"
	"aircnc/internal/health"
	"aircnc/internal/notifications"
	paymenthandler "aircnc/internal/payments/handler"
	paymentservice "aircnc/internal/payments/service"
	roomhandler "aircnc/internal/rooms/handler"
	roomrepository "aircnc/internal/rooms/repository"
	roomservice "aircnc/internal/rooms/service"
	userhandler "aircnc/internal/users/handler"
	userrepository "aircnc/internal/users/repository"
	userservice "aircnc/internal/users/service"
	"aircnc/pkg/app"
	"aircnc/pkg/config"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting AirCNC API service")

	tokens := auth.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	guard := auth.Required(tokens, cfg.Log)

	dispatcher := notifications.NewDispatcher(newMailer(cfg), cfg.NotificationQueueSize, cfg.Log)
	publisher := newPublisher(cfg)

	userService := userservice.NewUserService(userrepository.NewMongoUserRepository(cfg), cfg)
	roomService := roomservice.NewRoomService(roomrepository.NewMongoRoomRepository(cfg), cfg)
	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		dispatcher,
		publisher,
		cfg,
	)
	paymentService := paymentservice.NewPaymentService(
		paymentservice.NewStripeGateway(cfg.PaymentSecretKey),
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		health.NewHandler(cfg.Client.Mongo, cfg.Log),
		auth.NewTokenHandler(tokens, cfg.Log),
		userhandler.NewUserHandler(userService, cfg.Log),
		roomhandler.NewRoomHandler(roomService, guard, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		paymenthandler.NewPaymentHandler(paymentService, guard, cfg.Log),
	)
	serverApp.OnShutdown(dispatcher.Stop)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

func newMailer(cfg *config.Config) notifications.Mailer {
	if cfg.SMTPHost == "" {
		cfg.Log.Warn("SMTP not configured, booking notifications disabled")
		return notifications.NewNopMailer(cfg.Log)
	}
	return notifications.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
	)
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka not configured, booking events disabled")
		return events.NewNopPublisher()
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBookingTopic, cfg.Log)
}
