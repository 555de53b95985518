package coverage

// Option narrows the universe of countries an operation considers.
type Option func(*options)

type options struct {
	countries map[string]struct{}
}

// WithCountries restricts an operation to the named countries. Calling it
// with no names leaves the universe unrestricted; repeated calls accumulate.
func WithCountries(names ...string) Option {
	return func(o *options) {
		if len(names) == 0 {
			return
		}
		if o.countries == nil {
			o.countries = make(map[string]struct{}, len(names))
		}
		for _, name := range names {
			o.countries[name] = struct{}{}
		}
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) includes(country string) bool {
	if o.countries == nil {
		return true
	}
	_, ok := o.countries[country]
	return ok
}
