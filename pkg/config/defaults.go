package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "aircncDb"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	DefaultTokenTTL = 1 * time.Hour

	DefaultSMTPPort = 587

	DefaultKafkaBookingTopic = "aircnc.bookings"

	DefaultNotificationQueueSize = 256

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
