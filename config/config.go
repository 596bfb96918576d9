package config

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	json "github.com/json-iterator/go"
)

type (
	NET struct {
		// Addr is the address the listener is bound to.
		Addr string `json:"addr"`
		// ReadBufferSize is the size of the buffer the request is read into. Exactly one read
		// is made per connection, so this is effectively the maximal request size: anything
		// longer is truncated and most likely fails parsing.
		ReadBufferSize int `json:"read_buffer_size"`
		// ReadTimeout limits how long the connection may stay silent before the request arrives.
		// Zero disables the deadline, in which case a stalled client occupies its goroutine
		// for as long as it wishes.
		ReadTimeout time.Duration `json:"read_timeout" test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration `json:"accept_loop_interrupt_period"`
	}

	Files struct {
		// Root is the base directory files are resolved against.
		Root string `json:"root"`
	}

	Log struct {
		// Level is a zerolog level name. Case doesn't matter.
		Level string `json:"level"`
		// JSON switches the console-friendly output to raw JSON lines.
		JSON bool `json:"json" test:"nullable"`
	}
)

// Config is constructed once at startup and must not be modified after the server has
// been started, as it's shared between all the connections.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually.
type Config struct {
	NET   NET   `json:"net"`
	Files Files `json:"files"`
	Log   Log   `json:"log"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:                      "127.0.0.1:4221",
			ReadBufferSize:            32 * 1024,
			ReadTimeout:               0,
			AcceptLoopInterruptPeriod: 1 * time.Second,
		},
		Files: Files{
			Root: "/",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a JSON config file. Fields missing in the file keep their default values.
// Durations may be specified either as strings ("1.5s") or as integer nanoseconds.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a JSON config on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	switch {
	case len(c.NET.Addr) == 0:
		return fmt.Errorf("config: net.addr must not be empty")
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("config: net.read_buffer_size must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.ReadTimeout < 0:
		return fmt.Errorf("config: net.read_timeout must not be negative")
	case c.NET.AcceptLoopInterruptPeriod <= 0:
		return fmt.Errorf("config: net.accept_loop_interrupt_period must be positive")
	case len(c.Files.Root) == 0:
		return fmt.Errorf("config: files.root must not be empty")
	}

	if _, err := c.Log.ZerologLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func init() {
	json.RegisterTypeDecoderFunc("time.Duration", func(ptr unsafe.Pointer, iter *json.Iterator) {
		switch iter.WhatIsNext() {
		case json.StringValue:
			d, err := time.ParseDuration(iter.ReadString())
			if err != nil {
				iter.ReportError("decode time.Duration", err.Error())
				return
			}

			*(*time.Duration)(ptr) = d
		case json.NumberValue:
			*(*time.Duration)(ptr) = time.Duration(iter.ReadInt64())
		default:
			iter.Skip()
			iter.ReportError("decode time.Duration", "must be either a string or a number")
		}
	})
}
