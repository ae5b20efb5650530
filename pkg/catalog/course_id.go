package catalog

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

const maxCode = 9999

// CourseID identifies a course by its four-letter subject and numeric code (e.g. "CSCI 1200")
type CourseID struct {
	Subject string `mapstructure:"subj" json:"subj"`
	Code    uint16 `mapstructure:"code" json:"code"`
}

type InvalidCourseIDError struct {
	Text   string
	Reason string
}

func (err *InvalidCourseIDError) Error() string {
	return fmt.Sprintf("\"%v\" is not in the course id format: %v", err.Text, err.Reason)
}

// NewCourseID builds a course id without validating its parts
func NewCourseID(subject string, code uint16) CourseID {
	return CourseID{Subject: subject, Code: code}
}

// ParseCourseID parses texts such as "CSCI 1200" or "CSCI1200". Texts must be 8 or 9 characters long,
// start with four uppercase letters and end with a four-character unsigned code ("1200" or "+200");
// whatever lies in between is ignored
func ParseCourseID(text string) (CourseID, error) {
	characters := []rune(text)

	if len(characters) != 8 && len(characters) != 9 {
		return CourseID{}, &InvalidCourseIDError{Text: text, Reason: fmt.Sprintf("length must be 8 or 9 but it is %v", len(characters))}
	}

	for _, character := range characters[:4] {
		if character < 'A' || character > 'Z' {
			return CourseID{}, &InvalidCourseIDError{Text: text, Reason: fmt.Sprintf("subject character '%c' is not an uppercase letter", character)}
		}
	}

	codeCharacters := characters[len(characters)-4:]
	digits := codeCharacters
	if digits[0] == '+' {
		digits = digits[1:]
	}
	for _, character := range digits {
		if character < '0' || character > '9' {
			return CourseID{}, &InvalidCourseIDError{Text: text, Reason: fmt.Sprintf("code \"%v\" is not numeric", string(codeCharacters))}
		}
	}
	code, err := strconv.ParseUint(string(digits), 10, 16)
	if err != nil {
		return CourseID{}, &InvalidCourseIDError{Text: text, Reason: err.Error()}
	}

	return CourseID{Subject: string(characters[:4]), Code: uint16(code)}, nil
}

// String renders the id with a zero-padded code, so that ParseCourseID(id.String()) == id
func (id CourseID) String() string {
	return fmt.Sprintf("%v %04d", id.Subject, id.Code)
}

// Compare orders ids by subject and then by code
func (id CourseID) Compare(other CourseID) int {
	if subjectComparison := cmp.Compare(id.Subject, other.Subject); subjectComparison != 0 {
		return subjectComparison
	}
	return cmp.Compare(id.Code, other.Code)
}

// CourseIDDecodeHook is a mapstructure hook rejecting decoded codes that are not whole numbers between 0 and 9999,
// which would otherwise be narrowed into a different id
func CourseIDDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(CourseID{}) {
		return data, nil
	}
	fields, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	codeAny, ok := fields["code"]
	if !ok {
		return data, nil
	}

	var code float64
	switch value := codeAny.(type) {
	case float64:
		code = value
	case int:
		code = float64(value)
	case int64:
		code = float64(value)
	case uint64:
		code = float64(value)
	default:
		return nil, fmt.Errorf("course code must be a number: %v", codeAny)
	}
	if code != math.Trunc(code) || code < 0 || code > maxCode {
		return nil, fmt.Errorf("course code must be an integer between 0 and %v: %v", maxCode, codeAny)
	}

	decoded := make(map[string]any, len(fields))
	for key, value := range fields {
		decoded[key] = value
	}
	decoded["code"] = uint16(code)
	return decoded, nil
}
