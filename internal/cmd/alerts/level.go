package alerts

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the appropriate icon for the alert level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelInfo:
		return emoji.Info
	case LevelSuccess:
		return emoji.Success
	default:
		return emoji.Unknown
	}
}

// Colorize wraps text in the color of the level. Color is forced on because
// the writer has already decided the destination supports it.
func (l Level) Colorize(text string) string {
	c := color.New(l.attribute())
	c.EnableColor()
	return c.Sprint(text)
}

func (l Level) attribute() color.Attribute {
	switch l {
	case LevelError:
		return color.FgRed
	case LevelWarning:
		return color.FgYellow
	case LevelInfo:
		return color.FgCyan
	case LevelSuccess:
		return color.FgGreen
	default:
		return color.Reset
	}
}
