package validation

// Messages surfaced to the user. The wording, typos included, matches the
// copy shipped with the mobile screen.
const (
	MsgNameRequired = "Please enter your full name"
	MsgNameTooShort = "Too Short!"
	MsgNameTooLong  = "Too Long!"

	MsgEmailRequired = "Please enter your email address."
	MsgEmailInvalid  = "Invalid email"

	MsgPasswordRequired = "Please enter your password."
	MsgPasswordPattern  = "Must contain minimun 8 characters, at least one uppercase letter, one lowercase letter, one number and one special character"

	MsgConfirmRequired = "Confirm password is required."
	MsgConfirmTooShort = "Confirn Password must be 8 characters long."
	MsgConfirmMismatch = "Your Passwords do not match."

	MsgMobileRequired = "Please enter your mobile number."
	MsgMobileLength   = "Must be exactly 11 digits"
	MsgMobileDigits   = "Must be only digits"
)
