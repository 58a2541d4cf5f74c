package pipeline

import "fmt"

// EmptyInputError indicates the pipeline was started without usable input.
// Downstream generators handle thin input with templated fallbacks; this
// error fires only when there is nothing to analyze at all.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s provided: enter resume text, skills, or experience before enhancing", e.Field)
}
