package stringutil

import (
	"strings"

	"github.com/katalvlaran/caplib/capseq"
)

// Split cuts s around every occurrence of delim and returns the pieces
// in a StringSeq whose capacity equals the number of pieces — full by
// construction, like every collection the splitter hands out. An empty
// delimiter yields ErrEmptyDelimiter with a nil sentinel result.
// Options (for example capseq.WithRegister) are passed through to the
// sequence. Complexity: O(len(s)).
func Split(s, delim string, opts ...capseq.Option) (*capseq.StringSeq, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	parts := strings.Split(s, delim)
	seq, err := capseq.NewStringSeq(len(parts), opts...)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		if err = seq.Append(part); err != nil {
			return nil, err
		}
	}

	return seq, nil
}
