package optimize

// Option configures an Optimizer at construction time.
type Option func(*config)

type config struct {
	hook Hook
}

func defaultConfig() config {
	return config{hook: noopHook{}}
}

// WithHook attaches a Hook that observes evaluations and branch steps as
// the search runs. Passing a nil hook panics: a silently-ignored nil hook
// would mask a caller bug.
func WithHook(h Hook) Option {
	if h == nil {
		panic("optimize: WithHook called with a nil Hook")
	}

	return func(c *config) { c.hook = h }
}
