// Package post defines the blog post form values and the validation rules
// applied to them.
package post

// Field identifies one input of the blog post form.
type Field string

const (
	FieldTitle Field = "title"
	FieldBody  Field = "body"
)

// Fields returns the form fields in the order they are entered.
func Fields() []Field {
	return []Field{FieldTitle, FieldBody}
}

// Values holds the current contents of the form.
type Values struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Get returns the value of the given field.
func (v Values) Get(f Field) string {
	switch f {
	case FieldTitle:
		return v.Title
	case FieldBody:
		return v.Body
	}
	return ""
}

// Set updates the value of the given field. Unknown fields are ignored.
func (v *Values) Set(f Field, s string) {
	switch f {
	case FieldTitle:
		v.Title = s
	case FieldBody:
		v.Body = s
	}
}

// IsZero reports whether both fields are empty.
func (v Values) IsZero() bool {
	return v.Title == "" && v.Body == ""
}
