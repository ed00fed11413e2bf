package models

// StdinIdentifier is the sentinel input identifier that denotes standard input.
const StdinIdentifier = "-"

// Invocation describes one run of catr: the ordered input identifiers and
// the numbering mode applied to all of them.
type Invocation struct {
	Files []string // Input identifiers in command-line order
	Mode  Mode     // Numbering policy
}

// Normalize returns a copy of the invocation with an empty file list
// replaced by a single StdinIdentifier.
func (inv Invocation) Normalize() Invocation {
	if len(inv.Files) == 0 {
		inv.Files = []string{StdinIdentifier}
		return inv
	}
	files := make([]string, len(inv.Files))
	copy(files, inv.Files)
	inv.Files = files
	return inv
}
