package types

import "github.com/sundrymarket/storefront/pkg/enums"

// Signal is a user-facing notification emitted by cart mutations. Business
// rule rejections travel through signals rather than errors: a rejected
// mutation leaves state untouched and reports why here.
type Signal struct {
	Kind    enums.SignalKind `json:"kind"`
	Message string           `json:"message"`
}

// Info builds an informational signal.
func Info(message string) Signal {
	return Signal{Kind: enums.SignalKindInfo, Message: message}
}

// Success builds a confirmation signal.
func Success(message string) Signal {
	return Signal{Kind: enums.SignalKindSuccess, Message: message}
}

// Error builds an error signal.
func Error(message string) Signal {
	return Signal{Kind: enums.SignalKindError, Message: message}
}
