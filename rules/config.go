package rules

// Config holds the thresholds shared across Rules, Flaws, and IndepRules.
// Each entry point reads only the fields its spec signature names; the rest
// are ignored. Build with NewConfig(opts...); later options override earlier
// ones, mirroring builder.newBuilderConfig.
type Config struct {
	MinSupport    int     // prune concepts with fewer objects than this
	MinRHS        int     // Rules: minimum attributes per emitted rule
	MinConfidence float64 // Flaws: lower bound on |O_sub|/|O_sup|
	MaxDiff       int     // Flaws: upper bound on |A_sub|-|A_sup|
	MaxConfidence float64 // IndepRules: upper bound on |O_sub|/|O_sup|
	MinWidth      int     // IndepRules: minimum attributes on the sup side
}

// Option customizes a Config before it is resolved by NewConfig.
type Option func(*Config)

// WithMinSupport sets the support prune (min_support, int >= 1).
func WithMinSupport(n int) Option { return func(c *Config) { c.MinSupport = n } }

// WithMinRHS sets the minimum rule width for Rules (min_rhs, int >= 1).
func WithMinRHS(n int) Option { return func(c *Config) { c.MinRHS = n } }

// WithMinConfidence sets the confidence floor for Flaws (min_confidence ∈ [0,1]).
func WithMinConfidence(c float64) Option { return func(cfg *Config) { cfg.MinConfidence = c } }

// WithMaxDiff sets the attribute-gap ceiling for Flaws (max_diff, int >= 0).
func WithMaxDiff(n int) Option { return func(c *Config) { c.MaxDiff = n } }

// WithMaxConfidence sets the confidence ceiling for IndepRules (max_confidence ∈ [0,1]).
func WithMaxConfidence(c float64) Option { return func(cfg *Config) { cfg.MaxConfidence = c } }

// WithMinWidth sets the minimum attribute-set width for IndepRules (min_width, int >= 1).
func WithMinWidth(n int) Option { return func(c *Config) { c.MinWidth = n } }

// NewConfig resolves a Config from defaults (MinSupport=1, MinRHS=1,
// MinConfidence=0, MaxDiff=0, MaxConfidence=1, MinWidth=1), applying opts in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		MinSupport:    1,
		MinRHS:        1,
		MinConfidence: 0,
		MaxDiff:       0,
		MaxConfidence: 1,
		MinWidth:      1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
