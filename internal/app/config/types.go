package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	MongoDB struct {
		URL    string
		DbName string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	RabbitMQ struct {
		URL string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App            App
		PhoneValidator PhoneValidator
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		EndpointPrefix          string
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
		LockTTLInSeconds        int
	}

	// PhoneValidator configures the external phone lookup. MaxRetries of 0
	// means a single attempt.
	PhoneValidator struct {
		BaseUrl          string
		ApiKey           string
		TimeoutInSeconds int
		MaxRetries       int
	}
)
