// Package textio is the persistence shim of confkit: it reads raw config
// file bytes, decodes them to UTF-8, normalizes line endings, and splits
// them into the line slices the engine edits; on the way out it joins
// lines and writes them back under an advisory lock.
//
// A content hash of the raw bytes is captured at read time so a save can
// detect that the file changed on disk in between.
package textio

import (
	"bytes"
	"os"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/confkit/pkg/types"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// Source is the result of reading a document from disk.
type Source struct {
	Lines  []string
	Hash   uint64 // xxh3 of the raw file bytes; zero when the file is absent
	Exists bool
}

// Read loads the file at path. A missing file is not an error: it yields
// an empty document with Exists false.
func Read(path, encoding string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Source{}, nil
		}
		return Source{}, &types.Error{Kind: types.ErrKindIO, Msg: "read " + path, Err: err}
	}
	text, err := Decode(data, encoding)
	if err != nil {
		return Source{}, err
	}
	return Source{
		Lines:  SplitLines(text),
		Hash:   xxh3.Hash(data),
		Exists: true,
	}, nil
}

// Decode converts raw file bytes to UTF-8 text. The empty encoding means
// UTF-8 with BOM sniffing: a UTF-8 BOM is stripped and a UTF-16LE BOM
// switches to UTF-16LE decoding. Explicit encodings are honored as
// given.
func Decode(data []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", types.EncodingUTF8:
		if bytes.HasPrefix(data, utf16LEBOM) {
			return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
		}
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	case types.EncodingUTF16LE:
		return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	case types.EncodingWindows1252:
		return decodeWith(data, charmap.Windows1252)
	default:
		return "", types.ErrUnsupportedEncoding
	}
}

func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", &types.Error{Kind: types.ErrKindEncoding, Msg: "decode input", Err: err}
	}
	return string(out), nil
}

// SplitLines normalizes CRLF to LF and splits text into lines. An empty
// document yields no lines at all, so that joining reproduces the empty
// file byte for byte.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines: lines joined with LF, no
// trailing newline added beyond what the line slice already encodes.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Hash returns the xxh3 content hash used for conflict detection.
func Hash(data []byte) uint64 {
	return xxh3.Hash(data)
}

// Write serializes lines to path. Unless noLock is set, an advisory
// exclusive lock is held on the destination for the duration of the
// write. The hash of the written bytes is returned so callers can track
// the new on-disk state.
func Write(path string, lines []string, noLock bool) (uint64, error) {
	data := []byte(JoinLines(lines))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, &types.Error{Kind: types.ErrKindIO, Msg: "open " + path, Err: err}
	}
	defer f.Close()

	if !noLock {
		if err := flock(f); err != nil {
			return 0, &types.Error{Kind: types.ErrKindIO, Msg: "lock " + path, Err: err}
		}
		defer funlock(f)
	}

	if _, err := f.Write(data); err != nil {
		return 0, &types.Error{Kind: types.ErrKindIO, Msg: "write " + path, Err: err}
	}
	return xxh3.Hash(data), nil
}
