package kernel

import (
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"

	"github.com/google/uuid"
)

// TrackingPrefix is the fixed prefix every tracking number carries.
const TrackingPrefix = "PCL-"

// trackingSuffixLength is the number of hex characters after the prefix.
const trackingSuffixLength = 12

// ErrTrackingNumberIsNotConstructed indicates a TrackingNumber that was not
// created via GenerateTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via GenerateTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is the public identifier of a shipment, in the form
// "PCL-" followed by 12 uppercase hex characters. Uniqueness is not a
// property of the value itself: creation flows must collision-check a
// freshly generated number against the shipment store before using it.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new candidate tracking number from
// random entropy. The caller is responsible for the store collision check.
func GenerateTrackingNumber() TrackingNumber {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TrackingNumber{
		value: TrackingPrefix + strings.ToUpper(raw[:trackingSuffixLength]),
	}
}

// TrackingNumberFromString reconstructs a tracking number from its string
// form, validating prefix and length. Used when parsing caller input and
// when restoring shipments from persistence.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	tn := TrackingNumber{value: s}
	if err := tn.Validate(); err != nil {
		return TrackingNumber{}, err
	}
	return tn, nil
}

// String returns the full tracking number including prefix.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks the prefix and suffix length.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	if !strings.HasPrefix(t.value, TrackingPrefix) ||
		len(t.value) != len(TrackingPrefix)+trackingSuffixLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match %s<12 hex chars>", t.value, TrackingPrefix),
		)
	}
	return nil
}
