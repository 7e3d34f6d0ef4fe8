package cfg

type Cfg struct {
	// HTTP server configuration
	Port string

	// Optional YAML overrides for the built-in registries
	SourcesFile    string
	PublishersFile string

	// Polling configuration
	PollInterval   int // seconds
	GuardWindow    int // seconds
	StartupDelay   int // seconds
	FetchTimeout   int // seconds
	ItemsPerSource int

	// Dedup cache bounds
	DedupMax    int
	DedupRetain int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
