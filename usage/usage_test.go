package usage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/packbits/format"
	"github.com/quickwritereader/packbits/packable"
	"github.com/quickwritereader/packbits/scheme"
	"github.com/quickwritereader/packbits/view"
)

func TestUsage_MakeArrayEndToEnd(t *testing.T) {
	v, arr, err := view.MakeWords(2, 2)
	require.NoError(t, err)

	for _, c := range []struct {
		i, j int
		val  uint32
	}{
		{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {1, 1, 4},
	} {
		row, err := v.Index(c.i)
		require.NoError(t, err)
		w, err := row.Elem(c.j)
		require.NoError(t, err)
		w.Set(c.val)
	}

	for i, want := range []uint32{1, 2, 3, 4} {
		w, err := arr.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, w.Uint32())
	}
}

func TestUsage_OffsetViewOverSharedArray(t *testing.T) {
	some := packable.New(5)
	for i := 0; i < 5; i++ {
		some.Index(i).Set(uint32(20 + i))
	}

	v, err := view.Words(some, 1, 2, 2)
	require.NoError(t, err)
	row0, err := v.Index(0)
	require.NoError(t, err)
	row1, err := v.Index(1)
	require.NoError(t, err)

	for _, set := range []struct {
		row *view.WordView
		j   int
		val uint32
	}{{row0, 0, 5}, {row0, 1, 6}, {row1, 0, 7}, {row1, 1, 8}} {
		w, err := set.row.Elem(set.j)
		require.NoError(t, err)
		w.Set(set.val)
	}
	v.Get(1, 1).Set(10)

	var out bytes.Buffer
	require.NoError(t, format.WriteArray(&out, some))
	assert.Equal(t, "20 5 6 7 10", out.String())
}

func TestUsage_ArithmeticPipeline(t *testing.T) {
	a, arrA, err := view.MakeWordsArithmetic(2, 3)
	require.NoError(t, err)
	b, arrB, err := view.MakeWordsArithmetic(2, 3)
	require.NoError(t, err)

	require.NoError(t, format.ReadArray(bytes.NewBufferString("1 2 3 4 5 6"), arrA))
	require.NoError(t, format.ReadArray(bytes.NewBufferString("6 5 4 3 2 1"), arrB))

	scaled, _ := a.Scale(3)
	sum, sumArr, err := scaled.Add(b)
	require.NoError(t, err)
	diff, diffArr, err := sum.Sub(a)
	require.NoError(t, err)

	assert.Equal(t, []uint32{9, 11, 13, 15, 17, 19}, sumArr.Values())
	assert.Equal(t, []uint32{8, 9, 10, 11, 12, 13}, diffArr.Values())
	assert.Equal(t, uint32(13), diff.Get(1, 2).Uint32())

	var out bytes.Buffer
	require.NoError(t, format.WriteJSON(&out, &diff.View))
	assert.Equal(t, `[[8,9,10],[11,12,13]]`, out.String())
}

func TestUsage_ShapeSnapshot(t *testing.T) {
	shape, err := scheme.ParseShape([]byte(`{"start": 2, "dims": [2, 2]}`))
	require.NoError(t, err)
	v, arr, err := shape.Allocate()
	require.NoError(t, err)

	require.NoError(t, format.ReadJSON(bytes.NewBufferString(`[[1,2],[3,4]]`), v))
	arr.Index(0).Set(77)

	snap, err := scheme.PackView(v)
	require.NoError(t, err)
	restored, restoredArr, err := scheme.UnpackView(snap)
	require.NoError(t, err)

	assert.Equal(t, shape, scheme.Describe(restored))
	assert.Equal(t, []uint32{77, 0, 1, 2, 3, 4}, restoredArr.Values())

	var out bytes.Buffer
	require.NoError(t, format.WriteView(&out, restored))
	assert.Equal(t, "1 2 3 4", out.String())
}

func TestUsage_EncodedSizes(t *testing.T) {
	arr := sampleArray(504)
	values := arr.Values()

	frame := arr.Pack()
	mp, err := msgpack.Marshal(arr)
	require.NoError(t, err)
	plainJSON, err := json.Marshal(values)
	require.NoError(t, err)
	mpValues, err := msgpack.Marshal(values)
	require.NoError(t, err)

	fmt.Fprintln(os.Stdout,
		"504 words\n  packed frame:", len(frame),
		"\n  msgpack(packed):", len(mp),
		"\n  msgpack([]uint32):", len(mpValues),
		"\n  json([]uint32):", len(plainJSON))

	assert.Less(t, len(frame), len(mpValues))
	assert.Less(t, len(mp), len(mpValues))

	back, err := packable.Unpack(frame)
	require.NoError(t, err)
	assert.Equal(t, values, back.Values())
}

func sampleArray(n int) *packable.Array {
	arr := packable.New(n)
	for i := 0; i < n; i++ {
		arr.Index(i).Set(uint32(i*7919) % 131072)
	}
	return arr
}

var sinkBytes []byte

func BenchmarkEncode(b *testing.B) {
	arr := sampleArray(504)
	values := arr.Values()

	b.Run("PackedFrame", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes = arr.Pack()
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})

	b.Run("MsgpackPacked", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes, _ = msgpack.Marshal(arr)
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})

	b.Run("MsgpackValues", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes, _ = msgpack.Marshal(values)
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})

	b.Run("StdJSON", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes, _ = json.Marshal(values)
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})

	b.Run("GoccyJSON", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes, _ = goccyjson.Marshal(values)
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})

	b.Run("JsoniterJSON", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkBytes, _ = jsoniter.ConfigFastest.Marshal(values)
		}
		b.Logf("size: %d bytes", len(sinkBytes))
	})
}

func BenchmarkDecode(b *testing.B) {
	arr := sampleArray(504)
	frame := arr.Pack()

	b.Run("PackedSequential", func(b *testing.B) {
		b.ReportAllocs()
		var sum uint32
		for i := 0; i < b.N; i++ {
			for j := 0; j < arr.Len(); j++ {
				sum += arr.Index(j).Uint32()
			}
		}
		_ = sum
	})

	b.Run("Unpack", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = packable.Unpack(frame)
		}
	})
}
