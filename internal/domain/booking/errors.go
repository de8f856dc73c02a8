package booking

// ValidationError is a user-correctable problem with a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	MsgNameRequired      = "Name is required"
	MsgInvalidNameFormat = "Invalid name format"
	MsgNameTooShort      = "Name must be at least 2 characters"
	MsgNameTooLong       = "Name must be less than 100 characters"
	MsgEmailRequired     = "Email is required"
	MsgInvalidEmail      = "Invalid email address"
	MsgPhoneRequired     = "Phone number is required"
	MsgInvalidPhone      = "Invalid phone number"
	MsgDateRequired      = "Date is required"
	MsgInvalidDate       = "Invalid date format (YYYY-MM-DD)"
	MsgDateInPast        = "Date cannot be in the past"
	MsgTimeRequired      = "Time is required"
	MsgInvalidTime       = "Invalid time format (HH:MM)"
	MsgPartySizeRequired = "Party size is required"
	MsgPartySizeNotInt   = "Party size must be a whole number"
	MsgPartySizeTooSmall = "Party size must be at least 1"
	MsgPartySizeTooLarge = "Party size cannot exceed 20"
	MsgOccasionNotText   = "Occasion must be text"
	MsgNotesNotText      = "Notes must be text"
	MsgNotesTooLong      = "Notes cannot exceed 500 characters"
	MsgOutsideHours      = "Selected time is outside of operating hours"
	MsgClosedDay         = "The restaurant is closed on the selected day"
	MsgInvalidBody       = "Invalid request body"
)
