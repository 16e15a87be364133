package logstore

import "time"

// TimestampLayout is the layout used when rendering an entry's timestamp.
const TimestampLayout = "2006-01-02 15:04:05 -0700"

// LogEntry is a single logged message and the moment it was added.
// Entries are values and are never modified after creation.
type LogEntry struct {
	Message   string
	Timestamp time.Time
}

// ShareText returns the plain-text export form of the entry:
// the timestamp, a blank line, then the message.
func (e LogEntry) ShareText() string {
	return FormatEntry(e)
}

// FormatEntry renders e as "{timestamp}\n\n{message}".
func FormatEntry(e LogEntry) string {
	return e.Timestamp.Format(TimestampLayout) + "\n\n" + e.Message
}
