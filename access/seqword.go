package access

import (
	"fmt"

	"github.com/quickwritereader/packbits/types"
)

// SeqWordAccess decodes the words of a packed buffer one after another.
type SeqWordAccess struct {
	buf   []byte // packed words
	count int    // number of words in buf
	pos   int    // index of the next word
	bit   int    // absolute bit offset of the next word
}

func NewSeqWordAccess(buf []byte, count int) (*SeqWordAccess, error) {
	if count < 0 {
		return nil, fmt.Errorf("NewSeqWordAccess: negative count %d: %w", count, ErrOutOfRange)
	}
	if need := types.ByteLen(count); len(buf) < need {
		return nil, fmt.Errorf("NewSeqWordAccess: %d words need %d bytes, have %d: %w",
			count, need, len(buf), ErrOutOfRange)
	}
	return &SeqWordAccess{buf: buf, count: count}, nil
}

// NewSeqWordAccessAt starts the sequence at word index from.
func NewSeqWordAccessAt(buf []byte, count, from int) (*SeqWordAccess, error) {
	s, err := NewSeqWordAccess(buf, count)
	if err != nil {
		return nil, err
	}
	if from < 0 || from > count {
		return nil, fmt.Errorf("NewSeqWordAccessAt: start %d outside [0,%d]: %w", from, count, ErrOutOfRange)
	}
	s.pos = from
	s.bit = from * types.BitLength
	return s, nil
}

func (s *SeqWordAccess) Count() int        { return s.count }
func (s *SeqWordAccess) CurrentIndex() int { return s.pos }
func (s *SeqWordAccess) Remaining() int    { return s.count - s.pos }

// Current returns the accessor of the next word without advancing.
func (s *SeqWordAccess) Current() (Word, error) {
	if s.pos >= s.count {
		return Word{}, fmt.Errorf("Current: out of bounds at pos %d: %w", s.pos, ErrOutOfRange)
	}
	return NewWord(s.buf[s.bit>>3:], uint8(s.bit&7)), nil
}

// Next decodes the next word and advances.
func (s *SeqWordAccess) Next() (uint32, error) {
	w, err := s.Current()
	if err != nil {
		return 0, fmt.Errorf("next: %w", err)
	}
	s.pos++
	s.bit += types.BitLength
	return w.Uint32(), nil
}

func (s *SeqWordAccess) Reset() {
	s.pos = 0
	s.bit = 0
}
