package downloader

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL        = errors.New("url does not match the expected host pattern")
	ErrUnsupportedSource = errors.New("only lightnovelworld.com novels are supported")
)

// HTTPStatusError reports a response whose status was not 200.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}

// SelectorNotFoundError reports that an expected element is missing
// from a fetched page.
type SelectorNotFoundError struct {
	Path string
}

func (e *SelectorNotFoundError) Error() string {
	return fmt.Sprintf("no element matches selector %q", e.Path)
}

// AttributeNotFoundError reports a found element missing an expected
// attribute.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attribute %q not found", e.Name)
}

// EmptyFieldError reports a field whose value was empty after
// normalization.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s is empty after normalization", e.Field)
}

// ImageKindError reports a cover image URL with no recognizable file
// extension.
type ImageKindError struct {
	URL string
}

func (e *ImageKindError) Error() string {
	return fmt.Sprintf("no image extension in %q", e.URL)
}
