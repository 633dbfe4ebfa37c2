package delimcodec

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/unkn0wn-root/delimcodec/event"
)

func newTestCodec(t *testing.T, opts Options) Codec {
	t.Helper()
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func collect(units *[]Unit) EmitFunc {
	return func(u Unit) { *units = append(*units, u) }
}

func fragments(t *testing.T, units []Unit) []string {
	t.Helper()
	out := make([]string, 0, len(units))
	for _, u := range units {
		s, ok := u[MessageField].(string)
		if !ok {
			t.Fatalf("unit missing %q string field: %v", MessageField, u)
		}
		out = append(out, s)
	}
	return out
}

func msgEvent(t *testing.T, msg string) *event.Event {
	t.Helper()
	ev := event.New()
	ev.SetField("message", msg)
	return ev
}

// encodeAll drains ev through repeated Encode calls with a fixed-size buffer
// and returns the concatenated output and the number of calls made.
func encodeAll(t *testing.T, c Codec, ev *event.Event, bufSize int) ([]byte, int) {
	t.Helper()
	var out bytes.Buffer
	dst := make([]byte, bufSize)
	calls := 0
	for {
		calls++
		n, done, err := c.Encode(ev, dst)
		if err != nil {
			t.Fatalf("Encode call %d: %v", calls, err)
		}
		out.Write(dst[:n])
		if done {
			return out.Bytes(), calls
		}
		if n == 0 {
			t.Fatalf("Encode made no progress with buffer size %d", bufSize)
		}
		if calls > 10_000 {
			t.Fatalf("Encode did not terminate")
		}
	}
}

// ==============================
// Decode
// ==============================

func TestDecodeFragmentsInOrder(t *testing.T) {
	c := newTestCodec(t, Options{Delimiter: "/"})

	var units []Unit
	c.Decode([]byte("foo/bar/baz"), collect(&units))

	want := []string{"foo", "bar", "baz"}
	if got := fragments(t, units); !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments = %v, want %v", got, want)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	c := newTestCodec(t, Options{})

	var units []Unit
	c.Decode(nil, collect(&units))
	c.Decode([]byte{}, collect(&units))

	if len(units) != 0 {
		t.Fatalf("empty input emitted %d units", len(units))
	}
}

func TestDecodeKeepsEmptyFragments(t *testing.T) {
	c := newTestCodec(t, Options{})

	var units []Unit
	c.Decode([]byte("a,,b,"), collect(&units))

	want := []string{"a", "", "b", ""}
	if got := fragments(t, units); !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments = %v, want %v", got, want)
	}
}

func TestDecodeDelimiterIsLiteral(t *testing.T) {
	cases := []struct {
		delim string
		in    string
		want  []string
	}{
		{".", "a.b", []string{"a", "b"}}, // not "split on any rune"
		{"<sep>", "foo<sep>bar<sep>baz", []string{"foo", "bar", "baz"}},
		{"||", "x||y", []string{"x", "y"}},
	}
	for _, tc := range cases {
		c := newTestCodec(t, Options{Delimiter: tc.delim})
		var units []Unit
		c.Decode([]byte(tc.in), collect(&units))
		if got := fragments(t, units); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("delim %q: fragments = %v, want %v", tc.delim, got, tc.want)
		}
	}
}

func TestDecodeCharset(t *testing.T) {
	c := newTestCodec(t, Options{Charset: charmap.ISO8859_1})

	var units []Unit
	c.Decode([]byte{0xE9, ',', 0xE8}, collect(&units)) // "é,è" in latin1

	want := []string{"é", "è"}
	if got := fragments(t, units); !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments = %v, want %v", got, want)
	}
}

func TestDecodeFreshUnitPerFragment(t *testing.T) {
	c := newTestCodec(t, Options{})

	var units []Unit
	c.Decode([]byte("a,a"), collect(&units))
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	units[0][MessageField] = "mutated"
	if units[1][MessageField] != "a" {
		t.Fatalf("units share state: %v", units[1])
	}
}

// ==============================
// Flush
// ==============================

func TestFlushBehavesLikeDecode(t *testing.T) {
	c := newTestCodec(t, Options{})

	var flushed, decoded []Unit
	c.Flush([]byte("tail"), collect(&flushed))
	c.Decode([]byte("tail"), collect(&decoded))

	if !reflect.DeepEqual(flushed, decoded) {
		t.Fatalf("Flush = %v, Decode = %v", flushed, decoded)
	}
	if got := fragments(t, flushed); !reflect.DeepEqual(got, []string{"tail"}) {
		t.Fatalf("fragments = %v", got)
	}

	var empty []Unit
	c.Flush(nil, collect(&empty))
	if len(empty) != 0 {
		t.Fatalf("empty flush emitted %d units", len(empty))
	}
}

// ==============================
// Encode
// ==============================

func TestEncodeSingleBuffer(t *testing.T) {
	c := newTestCodec(t, Options{Delimiter: "/"})
	ev := msgEvent(t, "foo")

	dst := make([]byte, 128)
	n, done, err := c.Encode(ev, dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !done {
		t.Fatalf("expected done=true for a record that fits")
	}

	got := string(dst[:n])
	if want := ev.String() + "/"; got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
	if !strings.Contains(got, "foo") || !strings.HasSuffix(got, "/") {
		t.Fatalf("encoded %q lacks payload or trailing delimiter", got)
	}
}

func TestEncodeSplitAcrossBuffers(t *testing.T) {
	c := newTestCodec(t, Options{})
	ev := msgEvent(t, strings.Repeat("0123456789", 10))

	out, calls := encodeAll(t, c, ev, 7)
	if calls < 2 {
		t.Fatalf("record unexpectedly fit in one 7-byte buffer (%d calls)", calls)
	}
	if want := ev.String() + ","; string(out) != want {
		t.Fatalf("reassembled %q, want %q", out, want)
	}
}

func TestEncodeZeroCapacityBuffer(t *testing.T) {
	c := newTestCodec(t, Options{})
	ev := msgEvent(t, "x")

	n, done, err := c.Encode(ev, nil)
	if err != nil || done || n != 0 {
		t.Fatalf("Encode into empty buffer: n=%d done=%v err=%v", n, done, err)
	}

	// record is pending now; a real buffer finishes it
	dst := make([]byte, 128)
	n, done, err = c.Encode(ev, dst)
	if err != nil || !done {
		t.Fatalf("Encode continuation: done=%v err=%v", done, err)
	}
	if want := ev.String() + ","; string(dst[:n]) != want {
		t.Fatalf("encoded %q, want %q", dst[:n], want)
	}
}

func TestEncodeOutOfOrderRejected(t *testing.T) {
	c := newTestCodec(t, Options{})
	a := msgEvent(t, strings.Repeat("a", 100))
	b := msgEvent(t, "b")

	dst := make([]byte, 8)
	n, done, err := c.Encode(a, dst)
	if err != nil || done {
		t.Fatalf("partial encode of a: n=%d done=%v err=%v", n, done, err)
	}
	partial := append([]byte(nil), dst[:n]...)

	other := make([]byte, 8)
	for i := range other {
		other[i] = 0xFF
	}
	n2, done2, err := c.Encode(b, other)
	if !errors.Is(err, ErrEventPending) {
		t.Fatalf("expected ErrEventPending, got %v", err)
	}
	if n2 != 0 || done2 {
		t.Fatalf("out-of-order call wrote n=%d done=%v", n2, done2)
	}
	for i := range other {
		if other[i] != 0xFF {
			t.Fatalf("out-of-order call touched the buffer at %d", i)
		}
	}

	// a is still drainable and the full output lines up
	var out bytes.Buffer
	out.Write(partial)
	rest, _ := encodeAll(t, c, a, 8)
	out.Write(rest)
	if want := a.String() + ","; out.String() != want {
		t.Fatalf("reassembled %q, want %q", out.String(), want)
	}
}

func TestEncodeResumableMultiByte(t *testing.T) {
	c := newTestCodec(t, Options{})
	ev := msgEvent(t, "héllo wörld π≈3.14159 ünïcode")

	// 3-byte buffers force suspension inside the multi-byte sequences;
	// a rune must never be split incorrectly across the calls.
	out, calls := encodeAll(t, c, ev, 3)
	if calls < 2 {
		t.Fatalf("expected multiple calls, got %d", calls)
	}
	if want := ev.String() + ","; string(out) != want {
		t.Fatalf("reassembled %q, want %q", out, want)
	}
}

func TestEncodeUnrepresentableRune(t *testing.T) {
	c := newTestCodec(t, Options{Charset: charmap.ISO8859_1})
	ev := msgEvent(t, "latin1 can't do 任")

	dst := make([]byte, 128)
	_, _, err := c.Encode(ev, dst)
	var terr *TransformError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransformError, got %v", err)
	}
	if terr.CodecID != c.ID() {
		t.Fatalf("TransformError.CodecID = %q, want %q", terr.CodecID, c.ID())
	}

	// failed record was abandoned; codec is idle again
	ok := msgEvent(t, "plain ascii")
	n, done, err := c.Encode(ok, dst)
	if err != nil || !done {
		t.Fatalf("Encode after transform failure: done=%v err=%v", done, err)
	}
	if want := ok.String() + ","; string(dst[:n]) != want {
		t.Fatalf("encoded %q, want %q", dst[:n], want)
	}
}

func TestEncodeReplaceUnsupported(t *testing.T) {
	c := newTestCodec(t, Options{Charset: charmap.ISO8859_1, ReplaceUnsupported: true})
	ev := msgEvent(t, "mixed 任 content")

	dst := make([]byte, 128)
	n, done, err := c.Encode(ev, dst)
	if err != nil {
		t.Fatalf("Encode with replacement: %v", err)
	}
	if !done || n == 0 {
		t.Fatalf("Encode with replacement: n=%d done=%v", n, done)
	}
}

// ==============================
// Identity and cloning
// ==============================

func TestIDFixedAtConstruction(t *testing.T) {
	c := newTestCodec(t, Options{})
	if c.ID() == "" {
		t.Fatalf("empty identity")
	}
	if c.ID() != c.ID() {
		t.Fatalf("identity changed between calls")
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := newTestCodec(t, Options{Delimiter: "/"})
	clone := orig.Clone()

	if orig.ID() == clone.ID() {
		t.Fatalf("clone shares identity %q", orig.ID())
	}

	// same configuration: identical output for the same record
	ev := msgEvent(t, "foo")
	a := make([]byte, 128)
	b := make([]byte, 128)
	an, adone, aerr := orig.Encode(ev, a)
	bn, bdone, berr := clone.Encode(ev, b)
	if aerr != nil || berr != nil || !adone || !bdone {
		t.Fatalf("encode: orig(done=%v err=%v) clone(done=%v err=%v)", adone, aerr, bdone, berr)
	}
	if !bytes.Equal(a[:an], b[:bn]) {
		t.Fatalf("orig %q != clone %q", a[:an], b[:bn])
	}

	// pending state never leaks between instances
	big := msgEvent(t, strings.Repeat("x", 500))
	if _, done, err := orig.Encode(big, make([]byte, 4)); done || err != nil {
		t.Fatalf("partial encode: done=%v err=%v", done, err)
	}
	fresh := make([]byte, 128)
	n, done, err := clone.Encode(msgEvent(t, "bar"), fresh)
	if err != nil || !done || n == 0 {
		t.Fatalf("clone was affected by orig's pending state: n=%d done=%v err=%v", n, done, err)
	}
}

func TestCloneOfCloneIsIndependent(t *testing.T) {
	a := newTestCodec(t, Options{Delimiter: ";"})
	b := a.Clone()
	c := b.Clone()

	ids := map[string]bool{a.ID(): true, b.ID(): true, c.ID(): true}
	if len(ids) != 3 {
		t.Fatalf("duplicate identities among clones")
	}

	var units []Unit
	c.Decode([]byte("x;y"), collect(&units))
	if got := fragments(t, units); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("clone lost configuration: %v", got)
	}
}
