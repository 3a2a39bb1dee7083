package replicate

import (
	"fmt"
	"strings"
)

// provenanceNotes derives the new model's notes from the seed notes. Empty
// notes get a fresh XHTML body; XHTML notes get a paragraph inserted
// before </body>; anything else gets a plain-text paragraph appended.
func provenanceNotes(notes, desc, source string) string {
	line := fmt.Sprintf("Processed with mex to produce %s of %s", desc, source)

	if notes == "" {
		return fmt.Sprintf(
			`<body xmlns="http://www.w3.org/1999/xhtml"><p><br/></p><hr/><p>%s</p></body>`, line)
	}

	i := strings.Index(notes, "</body>")
	if i == -1 {
		return notes + "\n\n" + line
	}
	return notes[:i] + fmt.Sprintf("<hr/><p>%s</p>", line) + notes[i:]
}
