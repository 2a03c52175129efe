package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	Debug        = true
	BuildVersion = "v0.1.0-BUILD_VERSION"

	Precision        = 8
	PrecisionMaximum = 1024
	MemoryCacheSize  = 64
	RPCPort          = 8239
	LogLevel         = 2
)

type Custom struct {
	Calculator struct {
		Precision int `toml:"precision"`
	} `toml:"calculator"`
	Storage struct {
		ValueLogGC      bool `toml:"value-log-gc"`
		MemoryCacheSize int  `toml:"memory-cache-size"`
	} `toml:"storage"`
	RPC struct {
		Port int `toml:"port"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

// Default is what Initialize yields for an empty file.
func Default() *Custom {
	var config Custom
	config.fill()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if p := config.Calculator.Precision; p < 0 || p > PrecisionMaximum {
		return nil, fmt.Errorf("invalid calculator precision %d", config.Calculator.Precision)
	}
	config.fill()
	return &config, nil
}

func (c *Custom) fill() {
	if c.Calculator.Precision == 0 {
		c.Calculator.Precision = Precision
	}
	if c.Storage.MemoryCacheSize == 0 {
		c.Storage.MemoryCacheSize = MemoryCacheSize
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = RPCPort
	}
	if c.Log.Level == 0 {
		c.Log.Level = LogLevel
	}
}
