package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region phone numbers are validated against.
const DefaultRegion = "CA"

var validate = validator.New()

// IsEmail reports whether email is a syntactically valid address.
// No DNS lookup is performed.
func IsEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}

// NormalizeEmail is the form account emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsPhoneForRegion reports whether phone is a valid number for region.
// National formats ("613-555-1234") are read in the region's numbering plan.
func IsPhoneForRegion(phone, region string) bool {
	if strings.TrimSpace(phone) == "" {
		return false
	}

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, region)
}

func IsCanadianPhone(phone string) bool {
	return IsPhoneForRegion(phone, DefaultRegion)
}
