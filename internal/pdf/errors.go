package pdf

import "errors"

// ErrUnreadableFile marks a file that could not be read as a PDF: missing,
// not a regular .pdf file, over the size cap, corrupt, or encrypted.
var ErrUnreadableFile = errors.New("unreadable file")

// ErrNoExtractableContent marks a structurally valid PDF from which no text
// lines and no cell grids could be extracted (typically a pure scan).
var ErrNoExtractableContent = errors.New("no extractable content")
