package bridge

import "github.com/forestrie/go-storagekey/scale"

type Options struct {
	// Codec options applied to every decode and to typed parameters.
	Codec []scale.Option
}

// Option is a generic option type used by the bridge.
// Implementations type assert to the Options target record and if that fails
// the expectation they ignore the option.
type Option func(any)

func WithCodecOptions(opts ...scale.Option) Option {
	return func(o any) {
		if bo, ok := o.(*Options); ok {
			bo.Codec = append(bo.Codec, opts...)
		}
	}
}
