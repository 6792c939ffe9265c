package docloader

import (
	"fmt"
	"strings"

	"quizbuddy/internal/domain"
)

// maxChunkChars bounds the pages produced for formats without a native
// page notion (plain text, docx).
const maxChunkChars = 4000

// SupportedExtensions lists the file extensions the loader can handle.
var SupportedExtensions = map[string]bool{
	"pdf":      true,
	"txt":      true,
	"md":       true,
	"markdown": true,
	"docx":     true,
	"doc":      true,
}

// IsSupported reports whether the filename has a loadable extension.
func IsSupported(filename string) bool {
	return SupportedExtensions[Extension(filename)]
}

// Extension returns the lower-cased extension of filename without the dot.
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// FileLoader turns uploaded files into ordered page texts, dispatching on
// file extension.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// LoadPages implements domain.DocumentLoader.
func (l *FileLoader) LoadPages(path string) ([]string, error) {
	switch ext := Extension(path); ext {
	case "md", "markdown":
		return loadMarkdownPages(path)
	case "pdf":
		return loadPDFPages(path)
	case "txt":
		return loadTextPages(path)
	case "docx", "doc":
		return loadDocxPages(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// splitChunks packs paragraphs (blank-line separated blocks) into chunks
// of at most maxChars characters. A single oversized paragraph becomes its
// own chunk rather than being torn apart.
func splitChunks(text string, maxChars int) []string {
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(p)+2 > maxChars {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

var _ domain.DocumentLoader = (*FileLoader)(nil)
