package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the configuration used when no file parses.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Engine: EngineSection{
			TickRate:     60,
			MaxFrameTime: 0.05,
			PlaybackRate: 1.0,
		},
		Library: LibrarySection{
			Root:       "~/.gamemaker",
			Collection: "Examples",
			Game:       "Start",
			Backend:    BackendFiles,
		},
		Storage: StorageSection{
			DBPath:  "~/.gamemaker/gamemaker.db",
			Journal: true,
		},
		Display: DisplaySection{
			ScaleX: 4,
			ScaleY: 8,
		},
		SSH: SSHSection{
			Address:     ":23235",
			HostKeyPath: ".ssh/gamemaker_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		LogLevel: "info",
	}
}
