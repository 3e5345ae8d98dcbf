package api

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/praffulbansal123/Project2-Books-Management/internal/domain"
)

// validate is the shared validator instance with the custom tags the
// request schemas rely on.
var validate = newValidator()

// phoneRX matches Indian mobile numbers: 10 digits starting 6-9.
var phoneRX = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// passwordSpecials is the allowed special character set for passwords.
const passwordSpecials = "#$@!%&*?"

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names in validation errors instead of Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	register := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
		}
	}

	register("objectid", validObjectID)
	register("inphone", validPhone)
	register("bookpassword", validPassword)
	register("isbn1013", validISBN)

	return v
}

// validObjectID accepts 24-character hexadecimal document ids.
func validObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

func validPhone(fl validator.FieldLevel) bool {
	return phoneRX.MatchString(fl.Field().String())
}

// validPassword enforces 8-15 characters with at least one lowercase,
// one uppercase, one digit and one special character, drawn only from
// letters, digits and the allowed special set. RE2 has no lookaheads,
// so the classes are checked explicitly instead of in one regex.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 15 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// validISBN accepts digits-and-dashes strings carrying exactly 10 or 13
// digits (ISBN-10 or ISBN-13 with optional dash grouping).
func validISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	if isbn == "" {
		return false
	}

	digits := 0
	for _, c := range isbn {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '-':
		default:
			return false
		}
	}

	return digits == 10 || digits == 13
}

// releaseDateLayouts are the accepted wire formats for releasedAt.
var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// parseReleaseDate parses a releasedAt value and enforces the fixed
// historical cutoff (no releases after 2022-01-01).
func parseReleaseDate(value string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range releaseDateLayouts {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a valid date (YYYY-MM-DD)")
	}

	if parsed.After(domain.ReleaseCutoff) {
		return time.Time{}, fmt.Errorf("must not be after 2022-01-01")
	}

	return parsed.UTC(), nil
}

// validateStruct runs the shared validator and converts failures into a
// field name to diagnostic message map. Returns nil when the value is valid.
func validateStruct(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": "invalid input"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = tagMessage(fe)
	}
	return fields
}

// tagMessage maps a failed validation tag to a user-facing message.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "objectid":
		return "must be a valid 24 character hex id"
	case "inphone":
		return "must be a valid 10 digit mobile number starting with 6-9"
	case "bookpassword":
		return "must be 8-15 characters with a lowercase, an uppercase, a digit and a special character"
	case "isbn1013":
		return "must be a valid ISBN with 10 or 13 digits"
	default:
		return "is invalid"
	}
}

// validatePathID validates a path-supplied identifier against the id
// schema (24-character hex). Returns the parsed ObjectID, or a field
// error map suitable for a 422 response.
func validatePathID(name, value string) (primitive.ObjectID, map[string]string) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, map[string]string{name: "must be a valid 24 character hex id"}
	}
	return id, nil
}
