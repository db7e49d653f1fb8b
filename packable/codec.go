package packable

import (
	"fmt"

	goccyjson "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/packbits/access"
)

// EncodeMsgpack writes the word count followed by the raw packed buffer.
func (a *Array) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeInt(int64(a.length)); err != nil {
		return err
	}
	return enc.EncodeBytes(a.data)
}

func (a *Array) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeInt()
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: length: %w", err)
	}
	words, err := dec.DecodeBytes()
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: words: %w", err)
	}
	decoded, err := fromPacked(n, words)
	if err != nil {
		return fmt.Errorf("DecodeMsgpack: %w", err)
	}
	a.Release()
	*a = *decoded
	return nil
}

// MarshalJSON writes the decoded values as a JSON array of numbers.
func (a *Array) MarshalJSON() ([]byte, error) {
	return goccyjson.Marshal(a.Values())
}

// UnmarshalJSON replaces the array with the values of a JSON array.
// Values above types.MaxValue are truncated as Word.Set does.
func (a *Array) UnmarshalJSON(b []byte) error {
	var vs []uint32
	if err := goccyjson.Unmarshal(b, &vs); err != nil {
		return fmt.Errorf("UnmarshalJSON: %v: %w", err, access.ErrDecode)
	}
	a.Release()
	*a = *FromValues(vs...)
	return nil
}

var (
	_ msgpack.CustomEncoder = (*Array)(nil)
	_ msgpack.CustomDecoder = (*Array)(nil)
)
