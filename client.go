package lingodex

import "go.uber.org/zap"

// Client is the lingodex entry point. It owns the translated-field
// registry and the logger shared by every index handle it creates.
type Client struct {
	reg *Registry
	log *zap.Logger
}

type clientConfig struct {
	reg *Registry
	log *zap.Logger
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRegistry supplies a shared translated-field registry, so several
// clients observe the same cache.
func WithRegistry(reg *Registry) Option {
	return func(c *clientConfig) { c.reg = reg }
}

// WithLogger supplies a zap logger. Composed operations are logged at
// debug level. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *clientConfig) { c.log = log }
}

// New creates a lingodex Client.
func New(opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.reg == nil {
		cfg.reg = NewRegistry()
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Client{reg: cfg.reg, log: cfg.log}
}

// Index creates an index handle for the given name and field mapping.
func (c *Client) Index(name string, mapping Mapping) *Index {
	return &Index{name: name, mapping: mapping, client: c}
}
