// Package config loads the YAML engine configuration for the game maker.
package config

import "time"

// EngineConfig is everything the CLI and hosts read from engine.yaml.
type EngineConfig struct {
	Engine   EngineSection  `yaml:"engine"`
	Library  LibrarySection `yaml:"library"`
	Storage  StorageSection `yaml:"storage"`
	Display  DisplaySection `yaml:"display"`
	SSH      SSHSection     `yaml:"ssh"`
	LogLevel string         `yaml:"log_level"` // debug, info, warn or error
}

// EngineSection controls the frame clock.
type EngineSection struct {
	TickRate     int     `yaml:"tick_rate"`
	MaxFrameTime float64 `yaml:"max_frame_time"` // Seconds
	Seed         uint64  `yaml:"seed"`           // 0 = seed from the clock
	PlaybackRate float64 `yaml:"playback_rate"`
}

// LibrarySection says where games are read from.
type LibrarySection struct {
	Root       string `yaml:"root"`
	Collection string `yaml:"collection"`
	Game       string `yaml:"game"`
	Backend    string `yaml:"backend"` // "files" or "sqlite"
}

// StorageSection configures the SQLite database.
type StorageSection struct {
	DBPath  string `yaml:"db_path"`
	Journal bool   `yaml:"journal"`
}

// DisplaySection sets how many pixels one terminal cell covers.
type DisplaySection struct {
	ScaleX int `yaml:"scale_x"`
	ScaleY int `yaml:"scale_y"`
}

// SSHSection configures gamemaker serve.
type SSHSection struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Backends accepted in library.backend.
const (
	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

// MaxFrameDuration returns max_frame_time as a duration.
func (c EngineConfig) MaxFrameDuration() time.Duration {
	return time.Duration(c.Engine.MaxFrameTime * float64(time.Second))
}
