package model

// SubjectListing describes one subject for the list command.
type SubjectListing struct {
	// Name is the display name from the subject metadata, or the directory
	// name when there is none.
	Name string
	// Dir is the subject directory relative to the shelf root.
	Dir string
	// Notes are the note files found in the subject, relative to Dir.
	Notes []string
}
