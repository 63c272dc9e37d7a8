package classbreaks

import "fmt"

// Method selects the classification algorithm.
type Method string

const (
	MethodEqualInterval Method = "EqualInterval"
	MethodHeadTail      Method = "HeadTail"
	MethodTailHead      Method = "TailHead"
	MethodNaturalBreaks Method = "JenksNaturalBreaks"
	MethodQuantiles     Method = "Quantiles"
	MethodArithmetic    Method = "Arithmetic"
)

// legacyEqualInterval is the spelling older callers send for
// MethodEqualInterval. It is accepted on input and never produced.
const legacyEqualInterval = "EqualInverval"

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{
		MethodEqualInterval,
		MethodHeadTail,
		MethodTailHead,
		MethodNaturalBreaks,
		MethodQuantiles,
		MethodArithmetic,
	}
}

// ParseMethod maps a method name to its Method. Matching is exact and
// case-sensitive.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case MethodEqualInterval, MethodHeadTail, MethodTailHead,
		MethodNaturalBreaks, MethodQuantiles, MethodArithmetic:
		return m, nil
	case legacyEqualInterval:
		return MethodEqualInterval, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMethod, name)
	}
}

func (m Method) String() string { return string(m) }

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, string(m))
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMethod.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Method) valid() bool {
	switch m {
	case MethodEqualInterval, MethodHeadTail, MethodTailHead,
		MethodNaturalBreaks, MethodQuantiles, MethodArithmetic:
		return true
	default:
		return false
	}
}

// fixedClassCount reports whether the method honours the requested class
// count. HeadTail and TailHead derive theirs from the data.
func (m Method) fixedClassCount() bool {
	return m != MethodHeadTail && m != MethodTailHead
}
