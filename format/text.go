// Package format reads and writes packed arrays and views as text.
//
// The text form is the decimal value of every word separated by single
// spaces with no trailing separator. Reading accepts any whitespace between
// tokens and encodes each token with access.Word.Set, so values above
// types.MaxValue are truncated, not rejected.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/quickwritereader/packbits/access"
	"github.com/quickwritereader/packbits/packable"
	"github.com/quickwritereader/packbits/view"
)

// WriteArray writes every word of a.
func WriteArray(w io.Writer, a *packable.Array) error {
	return writeWords(w, a, 0)
}

// WriteView writes the words of v's container from v's start to the end of
// the container.
func WriteView(w io.Writer, v *view.WordView) error {
	a, err := backing(v)
	if err != nil {
		return err
	}
	return writeWords(w, a, v.Start())
}

func backing(v *view.WordView) (*packable.Array, error) {
	a := view.Array(v)
	if a == nil {
		return nil, fmt.Errorf("format: view container %T is not a packed array: %w", v.Container(), access.ErrInvalidShape)
	}
	return a, nil
}

func writeWords(w io.Writer, a *packable.Array, from int) error {
	seq, err := access.NewSeqWordAccessAt(a.Bytes(), a.Len(), from)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	bw := bufio.NewWriter(w)
	var scratch [16]byte
	for seq.Remaining() > 0 {
		if seq.CurrentIndex() > from {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		v, err := seq.Next()
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}
		if _, err := bw.Write(strconv.AppendUint(scratch[:0], uint64(v), 10)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadArray fills every word of a from r.
func ReadArray(r io.Reader, a *packable.Array) error {
	return readWords(r, a, 0)
}

// ReadView fills v's container from v's start to the end of the container.
func ReadView(r io.Reader, v *view.WordView) error {
	a, err := backing(v)
	if err != nil {
		return err
	}
	return readWords(r, a, v.Start())
}

func readWords(r io.Reader, a *packable.Array, from int) error {
	seq, err := access.NewSeqWordAccessAt(a.Bytes(), a.Len(), from)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for seq.Remaining() > 0 {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("format: word %d: %w", seq.CurrentIndex(), err)
			}
			return fmt.Errorf("format: word %d: %w", seq.CurrentIndex(), io.ErrUnexpectedEOF)
		}
		n, err := strconv.ParseUint(sc.Text(), 10, 32)
		if err != nil {
			return fmt.Errorf("format: word %d: %v: %w", seq.CurrentIndex(), err, access.ErrDecode)
		}
		w, err := seq.Current()
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}
		w.Set(uint32(n))
		if _, err := seq.Next(); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}
	return nil
}
