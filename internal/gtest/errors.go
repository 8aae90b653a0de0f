package gtest

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRoot indicates the report contains no top-level element.
	ErrMissingRoot = errors.New("report has no root node")
	// ErrUnexpectedRootTag indicates the top-level element is not RootTag.
	ErrUnexpectedRootTag = errors.New("report has an invalid root node tag")
	// ErrMalformedTimestamp indicates a timestamp without the expected separators.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrMalformedNumeric indicates an integer attribute holding non-numeric text.
	ErrMalformedNumeric = errors.New("malformed numeric attribute")
)

// MissingRootError reports an empty document.
type MissingRootError struct {
	Source string
}

func (e *MissingRootError) Error() string {
	return fmt.Sprintf("the xml file %q has no root node", e.Source)
}

func (e *MissingRootError) Unwrap() error { return ErrMissingRoot }

// RootTagError reports a document whose root element has the wrong tag.
type RootTagError struct {
	Source   string
	Found    string
	Expected string
}

func (e *RootTagError) Error() string {
	return fmt.Sprintf("the xml file %q has an invalid root node tag (found: %q, expected: %q)", e.Source, e.Found, e.Expected)
}

func (e *RootTagError) Unwrap() error { return ErrUnexpectedRootTag }

// TimestampError reports a timestamp that ConvertTimestamp cannot split.
type TimestampError struct {
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: expected YYYY-MM-DDTHH:MM:SS", e.Value)
}

func (e *TimestampError) Unwrap() error { return ErrMalformedTimestamp }

// NumericError reports an attribute that could not be converted to an integer.
type NumericError struct {
	Tag   string
	Attr  string
	Value string
	Err   error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("attribute %q of node %s: invalid integer %q: %v", e.Attr, e.Tag, e.Value, e.Err)
}

func (e *NumericError) Unwrap() []error { return []error{ErrMalformedNumeric, e.Err} }
