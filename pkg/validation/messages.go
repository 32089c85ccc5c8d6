package validation

// Default failure messages, used when a predicate is called with an empty message.
const (
	MsgRequired = "You must fill in the field"
	MsgNumeric  = "Number is required"
	MsgInteger  = "Whole number is required"
	MsgMin      = "Too few characters specified"
	MsgMax      = "Too many characters specified"
	MsgEquals   = "Values do not match"
	MsgBetween  = "Value is out of range"
	MsgRegex    = "Value has an invalid format"
	MsgDate     = "Date is invalid"
	MsgIn       = "Value is not allowed"
	MsgCustom   = "Value is invalid"
	MsgEmail    = "Email is invalid"
	MsgCSRF     = "csrf"
	MsgCaptcha  = "Please fill in the field :: reCaptcha"
)

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
