package validation

// Per-field bounds enforced by the forms
const (
	TitleMaxLen       = 250
	DescriptionMaxLen = 5000
	UsernameMinLen    = 3
	UsernameMaxLen    = 50
	EmailMaxLen       = 120
	PasswordMinLen    = 8
	PasswordMaxLen    = 128
)

// ItemForm carries the raw field values for creating or editing an item.
// Validate normalizes the fields in place and returns every rule violation.
type ItemForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate trims both fields and applies the item rules
func (f *ItemForm) Validate() Errors {
	var errs Errors

	title, titleErrs := Check("title", f.Title,
		Required("Title is required."),
		Length(1, TitleMaxLen, "Title must be between 1 and 250 characters."),
		NotSuspicious(),
	)
	f.Title = title
	errs = append(errs, titleErrs...)

	description, descErrs := Check("description", f.Description,
		Length(0, DescriptionMaxLen, "Description must not exceed 5000 characters."),
		NotSuspicious(),
	)
	f.Description = description
	errs = append(errs, descErrs...)

	return errs
}

// RegistrationForm carries the raw field values for a registration attempt
type RegistrationForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate normalizes the fields and applies the registration rules,
// including the confirm-password cross-check
func (f *RegistrationForm) Validate() Errors {
	var errs Errors

	username, usernameErrs := Check("username", f.Username,
		Required("Username is required."),
		Length(UsernameMinLen, UsernameMaxLen, "Username must be between 3 and 50 characters."),
		NotSuspicious(),
	)
	f.Username = username
	errs = append(errs, usernameErrs...)

	email, emailErrs := Check("email", f.Email,
		Required("Email is required."),
		Email("Invalid email address."),
		Length(0, EmailMaxLen, "Email must not exceed 120 characters."),
	)
	f.Email = email
	errs = append(errs, emailErrs...)

	password, passwordErrs := Check("password", f.Password,
		Required("Password is required."),
		Length(PasswordMinLen, PasswordMaxLen, "Password must be between 8 and 128 characters."),
	)
	f.Password = password
	errs = append(errs, passwordErrs...)

	confirm, confirmErrs := Check("confirm_password", f.ConfirmPassword,
		Required("Please confirm your password."),
	)
	f.ConfirmPassword = confirm
	errs = append(errs, confirmErrs...)

	if len(confirmErrs) == 0 {
		errs = append(errs, Match("confirm_password", f.ConfirmPassword, f.Password, "Passwords must match.")...)
	}

	return errs
}

// LoginForm carries the raw field values for a login attempt
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate trims the username and applies the login rules
func (f *LoginForm) Validate() Errors {
	var errs Errors

	username, usernameErrs := Check("username", f.Username,
		Required("Username is required."),
		Length(0, UsernameMaxLen, "Username must not exceed 50 characters."),
	)
	f.Username = username
	errs = append(errs, usernameErrs...)

	password, passwordErrs := Check("password", f.Password,
		Required("Password is required."),
	)
	f.Password = password
	errs = append(errs, passwordErrs...)

	return errs
}
