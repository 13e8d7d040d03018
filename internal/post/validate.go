package post

import "unicode/utf8"

// MinLength is the minimum number of characters a field must contain.
const MinLength = 2

// Validation messages shown next to the offending field.
const (
	MsgTitleRequired = "Please enter a title for your blog post."
	MsgBodyRequired  = "Please enter a content for your blog post."
	MsgTooShort      = "Too Short!"
)

// rule is a single field constraint: a required message plus a minimum length.
type rule struct {
	required string
	min      int
}

var rules = map[Field]rule{
	FieldTitle: {required: MsgTitleRequired, min: MinLength},
	FieldBody:  {required: MsgBodyRequired, min: MinLength},
}

// Result maps each invalid field to its message. Valid fields are absent.
type Result map[Field]string

// Valid reports aggregate validity: true only when no field has a message.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Has reports whether the field currently has a validation message.
func (r Result) Has(f Field) bool {
	_, ok := r[f]
	return ok
}

// Message returns the field's message, or "" when the field is valid.
func (r Result) Message(f Field) string {
	return r[f]
}

// ValidateField checks a single value against the field's rule and returns the
// message to display, or "" when the value is valid.
func ValidateField(f Field, value string) string {
	rl, ok := rules[f]
	if !ok {
		return ""
	}
	if value == "" {
		return rl.required
	}
	if utf8.RuneCountInString(value) < rl.min {
		return MsgTooShort
	}
	return ""
}

// Validate evaluates every field of v. It has no side effects, so calling it
// again on unchanged values yields an equal Result.
func Validate(v Values) Result {
	res := Result{}
	for _, f := range Fields() {
		if msg := ValidateField(f, v.Get(f)); msg != "" {
			res[f] = msg
		}
	}
	return res
}
