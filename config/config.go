package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

func newConfigError(format string, args ...interface{}) error {
	return errors.Join(ErrInvalidConfig, fmt.Errorf(format, args...))
}

type Config struct {
	Log    *LogConfig   `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Bench  *BenchConfig `yaml:"bench"`
}

func (c *Config) fix() error {
	type fixInter interface {
		fix() error
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Bench == nil {
		c.Bench = &BenchConfig{}
	}

	for _, fix := range []fixInter{c.Log, c.Bench} {
		if err := fix.fix(); err != nil {
			return err
		}
	}

	return c.Server.fix()
}

type ServerConfig struct {
	HttpListen           string `yaml:"httpListen"`
	HttpPort             int    `yaml:"httpPort"`
	GracefullStopTimeout time.Duration
}

func (sc *ServerConfig) fix() error {
	if sc.HttpPort == 0 {
		sc.HttpPort = 18001
	}
	if sc.GracefullStopTimeout == 0 {
		sc.GracefullStopTimeout = 5 * time.Second
	}
	return nil
}

// BenchConfig drives the bench command : Producers goroutines signal the
// semaphore, Consumers goroutines wait on it, for Duration.
type BenchConfig struct {
	Producers   int    `yaml:"producers"`
	Consumers   int    `yaml:"consumers"`
	DurationStr string        `yaml:"duration"`
	Duration    time.Duration `yaml:"-"`
}

func (bc *BenchConfig) fix() error {
	if bc.Producers <= 0 {
		bc.Producers = runtime.NumCPU()
	}
	if bc.Consumers <= 0 {
		bc.Consumers = runtime.NumCPU()
	}
	if len(bc.DurationStr) > 0 {
		d, err := time.ParseDuration(bc.DurationStr)
		if err != nil {
			return newConfigError("invalid bench duration : %s", bc.DurationStr)
		}
		bc.Duration = d
	}
	if bc.Duration <= 0 {
		bc.Duration = 10 * time.Second
	}
	return nil
}

type LogHandlerFileConfig struct {
	FileName   string `yaml:"fileName"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
}

type LogHandlerConfig struct {
	File   *LogHandlerFileConfig `yaml:"file"`
	StdOut bool                  `yaml:"stdout"`
}

type LogConfig struct {
	LevelStr           string `yaml:"level"`
	level              zapcore.Level
	StacktraceLevelStr string           `yaml:"StacktraceLevel"`
	Caller             *bool            `yaml:"caller"`
	Func               *bool            `yaml:"func"`
	Hander             LogHandlerConfig `yaml:"handler"`
}

func (lc *LogConfig) fix() error {
	if lc.Hander.File == nil && !lc.Hander.StdOut {
		lc.Hander.StdOut = true
	}
	if lc.Caller == nil {
		t := true
		lc.Caller = &t
	}
	if lc.Func == nil {
		f := false
		lc.Func = &f
	}
	return nil
}

func SetLogLevel(l zapcore.Level) {
	cfg.Log.level = l
}

func GetLogLevel() zapcore.Level {
	return cfg.Log.level
}

func InitConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if err = cfg.fix(); err != nil {
		return err
	}
	return nil
}
