package filestorage

// LineFile is a flat text file handled one record per line
type LineFile interface {
	// ReadLines returns every line without its terminator. A missing file reads as empty.
	ReadLines() ([]string, error)

	// AppendLine appends a single line, creating the file when needed
	AppendLine(line string) error

	// WriteLines replaces the whole file with the given lines
	WriteLines(lines []string) error

	// Truncate empties the file
	Truncate() error

	// Path returns the file's location on disk
	Path() string
}
