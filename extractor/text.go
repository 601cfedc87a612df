package extractor

import (
	"bytes"
	"context"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// textExtractor decodes plain text with an encoding fallback chain:
// UTF-8, GBK, GB18030 (GB2312 superset), Latin-1.
type textExtractor struct{}

func (t *textExtractor) Extract(_ context.Context, _ string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, enc := range []encoding.Encoding{simplifiedchinese.GBK, simplifiedchinese.GB18030} {
		if out, ok := decodeStrict(enc, data); ok {
			return out, nil
		}
	}
	// Latin-1 maps every byte to a rune, mirroring the chain's terminal step.
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", ErrDecodeFailure
	}
	return string(out), nil
}

// decodeStrict decodes data and rejects outputs where the decoder substituted
// replacement runes for invalid sequences.
func decodeStrict(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
