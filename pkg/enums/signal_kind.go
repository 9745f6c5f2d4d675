package enums

import "fmt"

// SignalKind classifies user-facing cart notifications.
type SignalKind string

const (
	SignalKindInfo    SignalKind = "info"
	SignalKindSuccess SignalKind = "success"
	SignalKindError   SignalKind = "error"
)

var validSignalKinds = []SignalKind{
	SignalKindInfo,
	SignalKindSuccess,
	SignalKindError,
}

// String implements fmt.Stringer.
func (k SignalKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SignalKind.
func (k SignalKind) IsValid() bool {
	for _, candidate := range validSignalKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSignalKind converts raw input into a SignalKind.
func ParseSignalKind(value string) (SignalKind, error) {
	for _, candidate := range validSignalKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid signal kind %q", value)
}
