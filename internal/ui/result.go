package ui

import (
	"fmt"
	"strings"
)

// Field is one labelled value in a result listing
type Field struct {
	Key   string
	Value string
}

// Result is an ordered key/value listing, e.g. the parsed forms of a BSSID
type Result struct {
	Title  string
	Fields []Field
	Styled bool
}

// NewResult creates an empty result
func NewResult(title string, styled bool) *Result {
	return &Result{Title: title, Styled: styled}
}

// Add appends a field and returns r for chaining
func (r *Result) Add(key, value string) *Result {
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
	return r
}

func (r *Result) keyWidth() int {
	w := 0
	for _, f := range r.Fields {
		if len(f.Key) > w {
			w = len(f.Key)
		}
	}
	return w + 1
}

// Render returns the listing with keys aligned. The title line is omitted
// when empty.
func (r *Result) Render() string {
	var lines []string
	if r.Title != "" {
		if r.Styled {
			lines = append(lines, ResultTitleStyle.Render(SuccessMarker+" "+r.Title))
		} else {
			lines = append(lines, r.Title)
		}
	}

	width := r.keyWidth()
	for _, f := range r.Fields {
		key := fmt.Sprintf("%-*s", width, f.Key+":")
		if r.Styled {
			lines = append(lines, ResultKeyStyle.Render(key)+" "+ResultValueStyle.Render(f.Value))
		} else {
			lines = append(lines, key+" "+f.Value)
		}
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// RenderError formats an error for the terminal
func RenderError(err error, styled bool) string {
	if err == nil {
		return ""
	}
	if !styled {
		return "Error: " + err.Error()
	}
	return ErrorTitleStyle.Render(FailureMarker+" Error:") + " " + ErrorMessageStyle.Render(err.Error())
}
