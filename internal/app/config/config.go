package config

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URL:    utils.GetEnvString("MONGO_URL", ""),
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "medicalSystem"),
		},
		Redis: Redis{
			Addr:     utils.GetEnvString("REDIS_ADDR", ""),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			URL: utils.GetEnvString("RABBITMQ_URL", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", constvars.DefaultShutdownTimeoutSecs),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			LockTTLInSeconds:        utils.GetEnvInt("APP_LOCK_TTL_IN_SECONDS", constvars.DefaultLockTTLInSeconds),
		},
		PhoneValidator: PhoneValidator{
			BaseUrl:          utils.GetEnvString("PHONE_VALIDATOR_BASE_URL", "https://api.api-ninjas.com"),
			ApiKey:           utils.GetEnvStringFirst("", "PHONE_VALIDATOR_API_KEY", "API_KEY"),
			TimeoutInSeconds: utils.GetEnvInt("PHONE_VALIDATOR_TIMEOUT_IN_SECONDS", 10),
			MaxRetries:       utils.GetEnvInt("PHONE_VALIDATOR_MAX_RETRIES", 0),
		},
	}
}

// Validate reports every required setting that is missing. The process must
// not start when it returns an error.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	var missing []string
	if driverConfig.MongoDB.URL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if internalConfig.PhoneValidator.ApiKey == "" {
		missing = append(missing, "PHONE_VALIDATOR_API_KEY")
	}
	if len(missing) > 0 {
		return exceptions.ErrMissingConfig(missing)
	}
	return nil
}
