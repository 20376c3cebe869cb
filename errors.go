package jsonmap

type codecError string

func (e codecError) Error() string {
	return string(e)
}

const (
	// ErrNotObject is returned when the top-level JSON value passed to an
	// unmarshal or decode function is not an object.
	ErrNotObject = codecError("jsonmap: top-level JSON value is not an object")

	// ErrUnexpectedEnd is returned when the input is empty or whitespace
	// only. Input truncated mid-object surfaces the JSON parser's own
	// error instead, since the parser knows where it stopped.
	ErrUnexpectedEnd = codecError("jsonmap: unexpected end of JSON input")

	// ErrTrailingBytes is returned when non-whitespace bytes follow the
	// top-level object.
	ErrTrailingBytes = codecError("jsonmap: trailing bytes after JSON object")
)
