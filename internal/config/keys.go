package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
	kBool
	kFloat
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "server.port", typ: kInt, env: "TATVAM_SERVER_PORT",
		apply:   func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
		extract: func(cfg Config) any { return cfg.Server.Port },
	},
	{
		key: "server.api_token", typ: kString, env: "TATVAM_SERVER_API_TOKEN",
		apply:   func(cfg *Config, v any) { cfg.Server.APIToken = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.APIToken },
	},
	{
		key: "knowledge.profile_path", typ: kString, env: "TATVAM_KNOWLEDGE_PROFILE_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.ProfilePath = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.ProfilePath },
	},
	{
		key: "knowledge.smalltalk_path", typ: kString, env: "TATVAM_KNOWLEDGE_SMALLTALK_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.SmalltalkPath = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.SmalltalkPath },
	},
	{
		key: "knowledge.jokes_path", typ: kString, env: "TATVAM_KNOWLEDGE_JOKES_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.JokesPath = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.JokesPath },
	},
	{
		key: "knowledge.memes_path", typ: kString, env: "TATVAM_KNOWLEDGE_MEMES_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.MemesPath = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.MemesPath },
	},
	{
		key: "knowledge.resume_path", typ: kString, env: "TATVAM_KNOWLEDGE_RESUME_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.ResumePath = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.ResumePath },
	},
	{
		key: "lookup.enabled", typ: kBool, env: "TATVAM_LOOKUP_ENABLED",
		apply:   func(cfg *Config, v any) { cfg.Lookup.Enabled = v.(bool) },
		extract: func(cfg Config) any { return cfg.Lookup.Enabled },
	},
	{
		key: "lookup.timeout_seconds", typ: kInt, env: "TATVAM_LOOKUP_TIMEOUT_SECONDS",
		apply:   func(cfg *Config, v any) { cfg.Lookup.TimeoutSeconds = v.(int) },
		extract: func(cfg Config) any { return cfg.Lookup.TimeoutSeconds },
	},
	{
		key: "lookup.cache_ttl_hours", typ: kInt, env: "TATVAM_LOOKUP_CACHE_TTL_HOURS",
		apply:   func(cfg *Config, v any) { cfg.Lookup.CacheTTLHours = v.(int) },
		extract: func(cfg Config) any { return cfg.Lookup.CacheTTLHours },
	},
	{
		key: "responder.topic_threshold", typ: kFloat, env: "TATVAM_RESPONDER_TOPIC_THRESHOLD",
		apply:   func(cfg *Config, v any) { cfg.Responder.TopicThreshold = v.(float64) },
		extract: func(cfg Config) any { return cfg.Responder.TopicThreshold },
	},
	{
		key: "responder.smalltalk_threshold", typ: kFloat, env: "TATVAM_RESPONDER_SMALLTALK_THRESHOLD",
		apply:   func(cfg *Config, v any) { cfg.Responder.SmalltalkThreshold = v.(float64) },
		extract: func(cfg Config) any { return cfg.Responder.SmalltalkThreshold },
	},
	{
		key: "responder.project_limit", typ: kInt, env: "TATVAM_RESPONDER_PROJECT_LIMIT",
		apply:   func(cfg *Config, v any) { cfg.Responder.ProjectLimit = v.(int) },
		extract: func(cfg Config) any { return cfg.Responder.ProjectLimit },
	},
	{
		key: "storage.data_dir", typ: kString, env: "TATVAM_STORAGE_DATA_DIR",
		apply:   func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
		extract: func(cfg Config) any { return cfg.Storage.DataDir },
	},
	{
		key: "log.level", typ: kString, env: "TATVAM_LOG_LEVEL",
		apply:   func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.Level },
	},
}

func applyBackend(cfg *Config, b Backend) error {
	for _, s := range specs {
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kBool:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok && v != "" {
				if bv, err := strconv.ParseBool(v); err == nil {
					s.apply(cfg, bv)
				} else {
					fmt.Fprintf(os.Stderr, "[WARN] could not parse bool from config key %s=%q: %v. Using default value.\n", s.key, v, err)
				}
			}
		case kFloat:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok && v != "" {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					s.apply(cfg, f)
				} else {
					fmt.Fprintf(os.Stderr, "[WARN] could not parse float from config key %s=%q: %v. Using default value.\n", s.key, v, err)
				}
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		if s.env == "" {
			continue
		}
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			if i, err := strconv.Atoi(raw); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		case kBool:
			if b, err := strconv.ParseBool(raw); err == nil {
				s.apply(cfg, b)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse bool from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		case kFloat:
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				s.apply(cfg, f)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse float from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}
