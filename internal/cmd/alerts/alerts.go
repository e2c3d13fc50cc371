// Package alerts carries the short notices bookshelf prints after each
// action: "✓ Book added", "! Catalog is empty", "✗ Failed to save catalog: ...".
// The menu and the catalog commands build an Alert and hand it to a Writer,
// which decides between plain, colored, JSON and YAML rendering.
package alerts

import (
	"fmt"
	"io"
)

// Alert is one notice shown to the user.
type Alert struct {
	Level   Level
	Message string
	Details []string // extra lines, such as the affected book
	Err     error    // appended to the message as ": err"
}

// NewError reports a failed action.
func NewError(message string) *Alert {
	return &Alert{Level: LevelError, Message: message}
}

// NewWarning reports an action that found nothing to do.
func NewWarning(message string) *Alert {
	return &Alert{Level: LevelWarning, Message: message}
}

// NewInfo reports a neutral event, such as leaving the menu.
func NewInfo(message string) *Alert {
	return &Alert{Level: LevelInfo, Message: message}
}

// NewSuccess reports a completed change.
func NewSuccess(message string) *Alert {
	return &Alert{Level: LevelSuccess, Message: message}
}

// WithError attaches the cause.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String renders the headline without details.
func (a *Alert) String() string {
	if a.Err != nil {
		return fmt.Sprintf("%s %s: %v", a.Level.Icon(), a.Message, a.Err)
	}
	return a.Level.Icon() + " " + a.Message
}

// Writer delivers alerts to the user.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// lineWriter prints the headline only, one alert per line.
type lineWriter struct {
	w io.Writer
}

// NewWriterTo returns a Writer printing one uncolored headline per alert,
// the menu's default when no FormatWriter is configured.
func NewWriterTo(w io.Writer) Writer {
	return lineWriter{w: w}
}

func (lw lineWriter) WriteAlert(alert *Alert) error {
	_, err := fmt.Fprintln(lw.w, alert.String())
	return err
}
