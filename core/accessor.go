package core

// Storer receives every converted occurrence of an option after its handler ran.
type Storer func(raw string, val any, act Action) error

// Initializer runs once per option at the start of every parse.
type Initializer func() error

// Accessor is the storer/initializer pair attached to an option.
type Accessor struct {
	storer      Storer
	initializer Initializer
}

// NullAccessor stores nothing. Values reach their fields through the handler
// registered with Parser.On, never through the accessor.
func NullAccessor() Accessor {
	return Accessor{
		storer:      func(string, any, Action) error { return nil },
		initializer: func() error { return nil },
	}
}

func (a Accessor) Store(raw string, val any, act Action) error {
	if a.storer == nil {
		return nil
	}
	return a.storer(raw, val, act)
}

func (a Accessor) Initialize() error {
	if a.initializer == nil {
		return nil
	}
	return a.initializer()
}
