package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTrimsBeforeValidating(t *testing.T) {
	value, errs := Check("title", "  hello  ", Required("required"), Length(1, 250, "length"))
	require.Empty(t, errs)
	assert.Equal(t, "hello", value)
}

func TestRequiredFailsOnWhitespaceOnly(t *testing.T) {
	_, errs := Check("title", "   \t  ", Required("Title is required."), Length(1, 250, "length"))
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMissingField, errs[0].Code)
	assert.Equal(t, "title", errs[0].Field)
}

func TestMissingFieldShortCircuitsRemainingRules(t *testing.T) {
	_, errs := Check("title", "", Required("required"), Length(1, 250, "length"), NotSuspicious())
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMissingField, errs[0].Code)
}

func TestLengthBounds(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		max   int
		want  bool
	}{
		{"at minimum", "abc", 3, 50, true},
		{"below minimum", "ab", 3, 50, false},
		{"at maximum", strings.Repeat("a", 50), 3, 50, true},
		{"above maximum", strings.Repeat("a", 51), 3, 50, false},
		{"empty with no lower bound", "", 0, 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := Length(tt.min, tt.max, "length violation")(tt.value)
			if tt.want {
				assert.Nil(t, fe)
			} else {
				require.NotNil(t, fe)
				assert.Equal(t, CodeLengthViolation, fe.Code)
			}
		})
	}
}

func TestEmailRule(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+c@sub.example.org"}
	for _, addr := range valid {
		assert.Nil(t, Email("invalid")(addr), addr)
	}

	invalid := []string{"not-an-email", "missing@domain", "@example.com", "a b@example.com"}
	for _, addr := range invalid {
		fe := Email("invalid")(addr)
		require.NotNil(t, fe, addr)
		assert.Equal(t, CodeInvalidFormat, fe.Code)
	}
}

func TestMatchReportsMismatch(t *testing.T) {
	errs := Match("confirm_password", "secret-one", "secret-two", "Passwords must match.")
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMismatchViolation, errs[0].Code)

	assert.Empty(t, Match("confirm_password", "same", "same", "Passwords must match."))
}

func TestNotSuspiciousRejectsInjectionSignatures(t *testing.T) {
	payloads := []string{
		"1 UNION SELECT username FROM users",
		"x; DROP TABLE items",
		"drop the table now",
		"INSERT payload INTO logs",
		"UPDATE users SET admin=1",
		"DELETE everything FROM items",
		"<script>alert(1)</script>",
		"<SCRIPT src=x></SCRIPT>",
		"javascript:alert(1)",
		"<img onerror=alert(1)>",
		"<body onload=steal()>",
		"<iframe src=evil>",
		"legit looking text --",
		"' OR '1'='1",
		"' or 1=1",
	}

	for _, payload := range payloads {
		fe := NotSuspicious()(payload)
		require.NotNil(t, fe, payload)
		assert.Equal(t, CodeSuspiciousInput, fe.Code, payload)
	}
}

func TestNotSuspiciousAllowsOrdinaryText(t *testing.T) {
	values := []string{
		"",
		"Alpha Widget",
		"A perfectly ordinary description of a vacuum cleaner.",
		"Union Street apartment",
		"set of updated kitchen knives",
	}

	for _, value := range values {
		assert.Nil(t, NotSuspicious()(value), value)
	}
}

func TestItemFormValid(t *testing.T) {
	form := ItemForm{Title: "  Alpha Widget  ", Description: "  A fine widget.  "}
	errs := form.Validate()
	require.Empty(t, errs)
	assert.Equal(t, "Alpha Widget", form.Title)
	assert.Equal(t, "A fine widget.", form.Description)
}

func TestItemFormTitleRequired(t *testing.T) {
	form := ItemForm{Title: "   ", Description: "anything at all"}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, CodeMissingField, errs[0].Code)
}

func TestItemFormBounds(t *testing.T) {
	form := ItemForm{Title: strings.Repeat("a", 251), Description: strings.Repeat("b", 5001)}
	errs := form.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, CodeLengthViolation, errs[0].Code)
	assert.Equal(t, CodeLengthViolation, errs[1].Code)
}

func TestItemFormRejectsSuspiciousDescription(t *testing.T) {
	form := ItemForm{Title: "Fine title", Description: "<script>document.location='http://evil'</script>"}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
	assert.Equal(t, CodeSuspiciousInput, errs[0].Code)
}

func TestRegistrationFormValid(t *testing.T) {
	form := RegistrationForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	require.Empty(t, form.Validate())
}

func TestRegistrationFormPasswordMismatch(t *testing.T) {
	form := RegistrationForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password124",
	}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "confirm_password", errs[0].Field)
	assert.Equal(t, CodeMismatchViolation, errs[0].Code)
}

func TestRegistrationFormCollectsAllViolations(t *testing.T) {
	form := RegistrationForm{
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "",
	}
	errs := form.Validate()
	require.Len(t, errs, 4)

	fields := make(map[string]Code)
	for _, fe := range errs {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, CodeLengthViolation, fields["username"])
	assert.Equal(t, CodeInvalidFormat, fields["email"])
	assert.Equal(t, CodeLengthViolation, fields["password"])
	assert.Equal(t, CodeMissingField, fields["confirm_password"])
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	form := LoginForm{}
	errs := form.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, CodeMissingField, errs[0].Code)
	assert.Equal(t, CodeMissingField, errs[1].Code)
}

func TestErrorsMessage(t *testing.T) {
	errs := Errors{
		{Field: "title", Code: CodeMissingField, Message: "Title is required."},
		{Field: "description", Code: CodeLengthViolation, Message: "Too long."},
	}
	assert.Equal(t, "title: Title is required.; description: Too long.", errs.Error())
}
