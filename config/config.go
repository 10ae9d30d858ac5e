package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Server     ServerConfig
	Calculator CalculatorConfig
	Playback   PlaybackConfig
	Log        LogConfig
}

type ServerConfig struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
}

type CalculatorConfig struct {
	GridSize int
	Workers  int    // 0 表示使用全部 CPU
	Kernel   string // e1 或 reference
}

type PlaybackConfig struct {
	TickMillis     int
	SecondsPerTick float64
	MaxYears       float64
	ResetYears     float64
	Speed          float64
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the ini file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
		return loadCfg(ini.Empty()), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return loadCfg(file), nil
}

func Parse(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	return loadCfg(file), nil
}

func Default() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	server := file.Section("server")
	calculator := file.Section("calculator")
	playback := file.Section("playback")
	logging := file.Section("log")
	return &Config{
		Server: ServerConfig{
			Addr:            server.Key("Addr").MustString(":9000"),
			ReadBufferSize:  server.Key("ReadBufferSize").MustInt(1024),
			WriteBufferSize: server.Key("WriteBufferSize").MustInt(1024),
		},
		Calculator: CalculatorConfig{
			GridSize: calculator.Key("GridSize").MustInt(25),
			Workers:  calculator.Key("Workers").MustInt(0),
			Kernel:   calculator.Key("Kernel").In("e1", []string{"e1", "reference"}),
		},
		Playback: PlaybackConfig{
			TickMillis:     playback.Key("TickMillis").MustInt(100),
			SecondsPerTick: playback.Key("SecondsPerTick").MustFloat64(86400),
			MaxYears:       playback.Key("MaxYears").MustFloat64(50),
			ResetYears:     playback.Key("ResetYears").MustFloat64(1),
			Speed:          playback.Key("Speed").MustFloat64(1),
		},
		Log: LogConfig{
			Level:  logging.Key("Level").MustString("info"),
			Format: logging.Key("Format").In("text", []string{"text", "json"}),
		},
	}
}

// SetupLog applies the log section to the standard logrus logger.
func (c *Config) SetupLog() {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		log.WithField("level", c.Log.Level).Warn("日志级别无效，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
