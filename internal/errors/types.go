package errors

import (
	"fmt"
	"strings"
)

// FetchError reports a failed clone or pull of the remote repository. Op is
// the step that failed: clone, pull or validate.
type FetchError struct {
	URL string
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Op, e.URL)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error        { return e.Err }
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// PathTraversalError reports a path that resolved outside its base directory.
type PathTraversalError struct {
	Path string
	Base string
}

func (e *PathTraversalError) Error() string {
	return fmt.Sprintf("path traversal detected: %s is not within %s", e.Path, e.Base)
}

func (e *PathTraversalError) Is(target error) bool { return target == ErrPathTraversal }

// JSONParseError reports a map file that is not a JSON object of the
// expected shape.
type JSONParseError struct {
	Path string
	Err  error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("cannot parse JSON file %s: %v", e.Path, e.Err)
}

func (e *JSONParseError) Unwrap() error        { return e.Err }
func (e *JSONParseError) Is(target error) bool { return target == ErrJSONParse }

// NotFoundError reports a selection token that matched nothing in the
// catalog. Category is set when the token carried a prefix.
type NotFoundError struct {
	Token        string
	Category     string
	Alternatives []string
}

func (e *NotFoundError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("%q not found", e.Token)
	}
	return fmt.Sprintf("%s %q not found", e.Category, e.Token)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Hint lists the alternatives as bullets, or returns "" when there are none.
func (e *NotFoundError) Hint() string {
	if len(e.Alternatives) == 0 {
		return ""
	}
	return "Available:\n  • " + strings.Join(e.Alternatives, "\n  • ")
}
