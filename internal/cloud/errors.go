package cloud

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument marks failures caused by a caller-supplied value,
	// such as a word count outside the usable range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSourceEmpty marks inputs that yield zero words after tokenization.
	ErrSourceEmpty = errors.New("source empty")
	// ErrSourceUnavailable marks inputs that cannot be read at all.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDestinationUnwritable marks output sinks that reject the document.
	ErrDestinationUnwritable = errors.New("destination unwritable")
)

// Wrap builds an error message that includes pipeline context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrSourceUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
