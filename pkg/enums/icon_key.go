package enums

import "fmt"

// IconKey identifies a storefront content icon. The set is closed: content
// configuration referencing an unknown key is rejected at load time instead
// of silently falling back to a default glyph.
type IconKey string

const (
	IconKeyDelivery IconKey = "delivery"
	IconKeyReturns  IconKey = "returns"
	IconKeyWarranty IconKey = "warranty"
	IconKeySupport  IconKey = "support"
	IconKeyQuality  IconKey = "quality"
	IconKeyDiscount IconKey = "discount"
	IconKeyGift     IconKey = "gift"
	IconKeySecure   IconKey = "secure"
	IconKeyShowroom IconKey = "showroom"
	IconKeyAssembly IconKey = "assembly"
)

var validIconKeys = []IconKey{
	IconKeyDelivery,
	IconKeyReturns,
	IconKeyWarranty,
	IconKeySupport,
	IconKeyQuality,
	IconKeyDiscount,
	IconKeyGift,
	IconKeySecure,
	IconKeyShowroom,
	IconKeyAssembly,
}

// String implements fmt.Stringer.
func (k IconKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known IconKey.
func (k IconKey) IsValid() bool {
	for _, candidate := range validIconKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseIconKey converts raw input into an IconKey.
func ParseIconKey(value string) (IconKey, error) {
	for _, candidate := range validIconKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid icon key %q", value)
}
