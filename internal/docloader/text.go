package docloader

import (
	"fmt"
	"os"
)

// loadTextPages reads a plain-text file and packs its paragraphs into
// bounded chunks, one chunk per page.
func loadTextPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return splitChunks(string(data), maxChunkChars), nil
}
