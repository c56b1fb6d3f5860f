package scale

import "fmt"

// OptionBoolScheme selects the wire form of Option<bool>.
type OptionBoolScheme uint8

const (
	// OptionBoolStrict is one discriminant byte followed by one boolean byte.
	OptionBoolStrict OptionBoolScheme = iota
	// OptionBoolCompact folds the boolean into the discriminant:
	// 0 = None, 1 = Some(true), 2 = Some(false).
	OptionBoolCompact
)

const (
	NameOptionBoolStrict  = "strict"
	NameOptionBoolCompact = "compact"
)

type CodecOptions struct {
	// FullConsumption makes decoding fail with ErrTrailingBytes if any input
	// remains after the value.
	FullConsumption bool
	OptionBool      OptionBoolScheme
}

// Option is a generic option type used by codec functions.
// Implementations type assert to their options target record and if that
// fails they ignore the option.
type Option func(any)

func WithFullConsumption() Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.FullConsumption = true
		}
	}
}

func WithOptionBoolScheme(scheme OptionBoolScheme) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.OptionBool = scheme
		}
	}
}

// NewCodecOptions applies opts over the defaults: partial consumption allowed,
// strict Option<bool>.
func NewCodecOptions(opts ...Option) CodecOptions {
	var o CodecOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParseOptionBoolScheme maps "strict" or "compact" to a scheme.
func ParseOptionBoolScheme(name string) (OptionBoolScheme, error) {
	switch name {
	case NameOptionBoolStrict, "":
		return OptionBoolStrict, nil
	case NameOptionBoolCompact:
		return OptionBoolCompact, nil
	default:
		return OptionBoolStrict, fmt.Errorf("scale: unknown option bool scheme %q", name)
	}
}

func (s OptionBoolScheme) String() string {
	switch s {
	case OptionBoolStrict:
		return NameOptionBoolStrict
	case OptionBoolCompact:
		return NameOptionBoolCompact
	default:
		return fmt.Sprintf("OptionBoolScheme(%d)", uint8(s))
	}
}
