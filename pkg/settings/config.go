package settings

type Config struct {
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Queue is the configuration for the ring queue
type Queue struct {
	InitialCapacity *int `mapstructure:"initial_capacity" yaml:"initial_capacity" validate:"omitempty,gte=0"`
}
