package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Registry overrides
	SourcesFile    string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file overriding the built-in feed source list (optional)"`
	PublishersFile string `long:"publishers-file" env:"PUBLISHERS_FILE" description:"YAML file overriding the built-in publisher directory (optional)"`

	// Polling configuration
	PollInterval   int `long:"poll-interval" env:"POLL_INTERVAL" default:"300" description:"Polling cycle interval in seconds"`
	GuardWindow    int `long:"guard-window" env:"GUARD_WINDOW" default:"60" description:"Minimum spacing between cycle starts in seconds"`
	StartupDelay   int `long:"startup-delay" env:"STARTUP_DELAY" default:"10" description:"Delay before the first out-of-band cycle in seconds"`
	FetchTimeout   int `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15" description:"Per-source fetch timeout in seconds"`
	ItemsPerSource int `long:"items-per-source" env:"ITEMS_PER_SOURCE" default:"3" description:"Newest items considered per source per cycle"`

	// Dedup cache bounds
	DedupMax    int `long:"dedup-max" env:"DEDUP_MAX" default:"1000" description:"Soft cap on remembered item keys"`
	DedupRetain int `long:"dedup-retain" env:"DEDUP_RETAIN" default:"600" description:"Keys retained after an eviction"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Newswire/1.0" description:"User agent string for feed requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:           raw.Port,
		SourcesFile:    raw.SourcesFile,
		PublishersFile: raw.PublishersFile,
		PollInterval:   raw.PollInterval,
		GuardWindow:    raw.GuardWindow,
		StartupDelay:   raw.StartupDelay,
		FetchTimeout:   raw.FetchTimeout,
		ItemsPerSource: raw.ItemsPerSource,
		DedupMax:       raw.DedupMax,
		DedupRetain:    raw.DedupRetain,
		UserAgent:      raw.UserAgent,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if cfg.DedupRetain >= cfg.DedupMax {
		return nil, fmt.Errorf("dedup-retain (%d) must be smaller than dedup-max (%d)", cfg.DedupRetain, cfg.DedupMax)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// Set replaces the global configuration. Intended for tests.
func Set(cfg *Cfg) {
	globalCfg = cfg
}
