package domain

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// DecodeSource turns raw bytes into a SourceFile. A byte order mark selects
// UTF-8 or UTF-16, otherwise UTF-8 is assumed. Invalid sequences are replaced
// with U+FFFD. Content holding NUL characters is binary and fails with ErrEncoding.
func DecodeSource(raw m.RawSource) (m.SourceFile, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	decoded, _, err := transform.Bytes(decoder, raw.Data)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("%w: %s: %w", ErrEncoding, raw.Identifier, err)
	}

	if bytes.IndexByte(decoded, 0) >= 0 {
		return m.SourceFile{}, fmt.Errorf("%w: %s: binary content", ErrEncoding, raw.Identifier)
	}

	return m.SourceFile{
		Identifier: raw.Identifier,
		Content:    strings.ToValidUTF8(string(decoded), "\uFFFD"),
	}, nil
}

// DecodeCorpus decodes raws in order, skipping the files that are not text.
// It returns the corpus and the number of skipped files.
func DecodeCorpus(raws []m.RawSource) (m.Corpus, int) {
	corpus := make(m.Corpus, 0, len(raws))
	skipped := 0

	for _, raw := range raws {
		file, err := DecodeSource(raw)
		if err != nil {
			slog.Warn("Skipping undecodable file", "file", raw.Identifier, "error", err)

			skipped++

			continue
		}

		corpus = append(corpus, file)
	}

	return corpus, skipped
}
