// Package config loads tatvam configuration from a JSON config file with
// TATVAM_* environment variable overrides.
package config

type Config struct {
	Server    ServerConfig
	Knowledge KnowledgeConfig
	Lookup    LookupConfig
	Responder ResponderConfig
	Storage   StorageConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port     int
	APIToken string // empty disables bearer auth
}

// KnowledgeConfig locates the four datasets. Each entry may be a local file
// path or an http(s) URL. ResumePath optionally points at a PDF used to fill
// the profile's about section when the dataset lacks one.
type KnowledgeConfig struct {
	ProfilePath   string
	SmalltalkPath string
	JokesPath     string
	MemesPath     string
	ResumePath    string
}

type LookupConfig struct {
	Enabled        bool
	TimeoutSeconds int
	CacheTTLHours  int
}

// ResponderConfig tunes the matching engine. Thresholds of 0 select the
// package defaults in internal/classify.
type ResponderConfig struct {
	TopicThreshold     float64
	SmalltalkThreshold float64
	ProjectLimit       int
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	dataDir := defaultDataDir()
	return Config{
		Server: ServerConfig{
			Port: 4200,
		},
		Knowledge: KnowledgeConfig{
			ProfilePath:   "data/profile.json",
			SmalltalkPath: "data/smalltalk.json",
			JokesPath:     "data/jokes.json",
			MemesPath:     "data/memes.json",
		},
		Lookup: LookupConfig{
			Enabled:        true,
			TimeoutSeconds: 6,
			CacheTTLHours:  24,
		},
		Responder: ResponderConfig{
			TopicThreshold:     0.70,
			SmalltalkThreshold: 0.65,
			ProjectLimit:       6,
		},
		Storage: StorageConfig{
			DataDir: dataDir,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON config file at
// $XDG_CONFIG_HOME/tatvam/config.json (or ~/.config/tatvam/config.json) and
// applies TATVAM_* environment overrides on top of defaults.
func Load() (Config, error) {
	return loadWith(newFileBackend(configFilePath()))
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}
