package settings

type Config struct {
	Logger Logger `yaml:"logger"`
	Buffer Buffer `yaml:"buffer"`
	Bench  Bench  `yaml:"bench"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `yaml:"compress"`
}

// Buffer is the configuration for growable buffers created by consumers
type Buffer struct {
	InitialCapacity int `yaml:"initial_capacity" validate:"gte=0"`
}

// Bench is the configuration for the growbench scenarios
type Bench struct {
	Elements  int      `yaml:"elements" validate:"gte=1"`
	Workers   int      `yaml:"workers" validate:"gte=1,lte=256"`
	Units     int      `yaml:"units" validate:"gte=1"`
	Damage    int      `yaml:"damage" validate:"gte=1"`
	Scenarios []string `yaml:"scenarios" validate:"dive,oneof=append mixed combat"`
}
