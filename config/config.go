package config

// Config is the root configuration structure.
type Config struct {
	Seed    SeedConfig    `yaml:"seed"`
	Editor  string        `yaml:"editor"` // falls back to $EDITOR
	Preview PreviewConfig `yaml:"preview"`
	Export  ExportConfig  `yaml:"export"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// SeedConfig is the note every session starts with.
type SeedConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// PreviewConfig configures markdown preview rendering.
type PreviewConfig struct {
	Style string `yaml:"style"` // glamour style: auto, dark, light, notty
	Width int    `yaml:"width"` // 0 = terminal width
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures logging. An empty File keeps the TUI silent.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

const (
	DefaultSeedTitle = "Example Note"
	DefaultSeedBody  = "Welcome to Notes! Select or create a note to begin editing."
)

var previewStyles = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
	"ascii": true,
	"pink":  true,
}

var logLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Seed: SeedConfig{
			Title: DefaultSeedTitle,
			Body:  DefaultSeedBody,
		},
		Preview: PreviewConfig{
			Style: "auto",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate resets values that cannot be used to their defaults.
func (c *Config) Validate() error {
	def := Default()
	if !previewStyles[c.Preview.Style] {
		c.Preview.Style = def.Preview.Style
	}
	if c.Preview.Width < 0 {
		c.Preview.Width = 0
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if !logLevels[c.Log.Level] {
		c.Log.Level = def.Log.Level
	}
	return nil
}
