package domain

import "errors"

// Kind classifies workspace errors so callers can decide how to react
// (e.g. offer "overwrite anyway?" on KindAlreadyExists).
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindIO
	KindConfig
	KindInvalidPath
)

// String returns the user-facing name of the kind
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindIO:
		return "io error"
	case KindConfig:
		return "config error"
	case KindInvalidPath:
		return "invalid path"
	default:
		return "error"
	}
}

// Sentinels for errors.Is checks against any *Error of the same kind.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists}
	ErrIO            = &Error{Kind: KindIO}
	ErrConfig        = &Error{Kind: KindConfig}
	ErrInvalidPath   = &Error{Kind: KindInvalidPath}
)

// Error is the typed error returned by every workspace operation
type Error struct {
	Kind Kind
	Op   string // e.g. "rename", "ensure_directory"
	Path string
	Err  error
}

// Error formats like *os.PathError: "op path: kind: cause"
func (e *Error) Error() string {
	var msg string
	switch {
	case e.Op != "" && e.Path != "":
		msg = e.Op + " " + e.Path + ": "
	case e.Op != "":
		msg = e.Op + ": "
	case e.Path != "":
		msg = e.Path + ": "
	}
	msg += e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind, so the sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound builds a KindNotFound error
func NotFound(op, path string) error {
	return &Error{Kind: KindNotFound, Op: op, Path: path}
}

// AlreadyExists builds a KindAlreadyExists error
func AlreadyExists(op, path string) error {
	return &Error{Kind: KindAlreadyExists, Op: op, Path: path}
}

// IO wraps an underlying OS failure
func IO(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// InvalidPath reports a path lacking a required component
func InvalidPath(op, path, reason string) error {
	return &Error{Kind: KindInvalidPath, Op: op, Path: path, Err: errors.New(reason)}
}

// Config wraps a configuration persistence failure
func Config(op, path string, err error) error {
	return &Error{Kind: KindConfig, Op: op, Path: path, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
