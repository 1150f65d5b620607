package xpression

// Backend names accepted in Config.Backend.
const (
	BackendTree     = "tree"
	BackendElastic  = "elastic"
	BackendDocument = "document"
	BackendSQL      = "sql"
)

// Config holds the settings of the xpr tool.
type Config struct {
	// Backend selects what the filter is rendered as.
	Backend string `mapstructure:"backend"`

	// Numbered switches SQL output to $1..$n placeholders.
	Numbered bool `mapstructure:"numbered"`

	// Color enables ANSI colors in error diagnostics.
	Color bool `mapstructure:"color"`

	// Verbose logs every builder call.
	Verbose bool `mapstructure:"verbose"`
}

func DefaultConfig() Config {
	return Config{Backend: BackendTree}
}
