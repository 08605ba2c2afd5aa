package writers

import "fmt"

// Output formats accepted by the Start* writers.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// ValidFormat reports an error for formats no writer handles.
func ValidFormat(format string) error {
	switch format {
	case FormatText, FormatJSONL:
		return nil
	}
	return fmt.Errorf("unsupported output %q (want %s or %s)", format, FormatText, FormatJSONL)
}
