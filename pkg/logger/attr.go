package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by position.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records a rule-set entry name under "rule". Empty names are dropped.
func Rule(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("rule", name)
}

// ErrorKey records the message option of a failed validation under "error_key".
func ErrorKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("error_key", key)
}

// Pattern records a predefined pattern name under "pattern".
func Pattern(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("pattern", name)
}

// Path records a file path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Valid records a validation outcome under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Duration records a duration under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
