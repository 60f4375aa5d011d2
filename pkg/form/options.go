package form

// UpdateOptions mirrors the per-call switches accepted by mutating methods.
// A nil EmitEvent means "emit".
type UpdateOptions struct {
	OnlySelf  bool  `json:"only_self,omitempty" yaml:"only_self,omitempty"`
	EmitEvent *bool `json:"emit_event,omitempty" yaml:"emit_event,omitempty"`
}

// Options converts o into Option values. A nil receiver yields nil.
func (o *UpdateOptions) Options() []Option {
	if o == nil {
		return nil
	}
	opts := make([]Option, 0, 2)
	if o.OnlySelf {
		opts = append(opts, OnlySelf())
	}
	if o.EmitEvent != nil {
		opts = append(opts, WithEmitEvent(*o.EmitEvent))
	}
	return opts
}

// Option adjusts how a single mutation is propagated.
type Option func(*updateConfig)

type updateConfig struct {
	onlySelf  bool
	emitEvent bool
}

// OnlySelf keeps the change on the control and does not touch its group.
func OnlySelf() Option {
	return func(c *updateConfig) { c.onlySelf = true }
}

// Silent suppresses change notifications for the call.
func Silent() Option {
	return WithEmitEvent(false)
}

func WithEmitEvent(emit bool) Option {
	return func(c *updateConfig) { c.emitEvent = emit }
}

func resolve(opts []Option) updateConfig {
	cfg := updateConfig{emitEvent: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// forward rebuilds options for a nested call, optionally forcing OnlySelf.
func (c updateConfig) forward(onlySelf bool) []Option {
	return []Option{
		func(dst *updateConfig) {
			dst.onlySelf = c.onlySelf || onlySelf
			dst.emitEvent = c.emitEvent
		},
	}
}
