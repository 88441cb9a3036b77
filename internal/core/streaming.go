package core

// streaming.go provides memory-efficient reader wrappers for CSV parsing.
//
//   - bomSkippingReader removes the UTF-8 BOM (0xEF 0xBB 0xBF) that Windows
//     spreadsheet tools prepend to exported files.
//   - utf8SanitizingReader replaces invalid UTF-8 bytes with '?' on the fly.
//
// WrapForStreaming applies both in the required order (BOM first), keeping
// memory bounded by the read buffer regardless of file size.

import (
	"io"
	"unicode/utf8"
)

// WrapForStreaming wraps an uploaded file reader with BOM skipping and
// UTF-8 sanitization.
func WrapForStreaming(r io.Reader) io.Reader {
	return newUTF8SanitizingReader(newBOMSkippingReader(r))
}

// bomSkippingReader wraps an io.Reader and skips a leading UTF-8 BOM.
type bomSkippingReader struct {
	reader     io.Reader
	bomChecked bool
	buf        [3]byte
	bufData    []byte
	bufOffset  int
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{reader: r}
}

func (r *bomSkippingReader) Read(p []byte) (int, error) {
	if !r.bomChecked {
		r.bomChecked = true

		n, err := io.ReadFull(r.reader, r.buf[:])
		if n == 0 {
			return 0, err
		}

		if n >= 3 && r.buf[0] == 0xEF && r.buf[1] == 0xBB && r.buf[2] == 0xBF {
			r.bufData = nil
		} else {
			r.bufData = r.buf[:n]
			r.bufOffset = 0
		}

		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err != nil && err != io.EOF {
			return 0, err
		}

		if len(r.bufData) > 0 {
			copied := copy(p, r.bufData[r.bufOffset:])
			r.bufOffset += copied
			if r.bufOffset >= len(r.bufData) {
				r.bufData = nil
			}
			if copied < len(p) && err != io.EOF {
				n2, err2 := r.reader.Read(p[copied:])
				return copied + n2, err2
			}
			if r.bufData != nil {
				// Probed bytes remain; hold back EOF until they drain.
				return copied, nil
			}
			return copied, err
		}
		if err == io.EOF {
			return 0, io.EOF
		}
	}

	if len(r.bufData) > r.bufOffset {
		copied := copy(p, r.bufData[r.bufOffset:])
		r.bufOffset += copied
		if r.bufOffset >= len(r.bufData) {
			r.bufData = nil
		}
		return copied, nil
	}

	return r.reader.Read(p)
}

// utf8SanitizingReader replaces invalid UTF-8 sequences with '?' while
// streaming. A multi-byte sequence split across two reads is carried over
// in pending rather than flagged invalid.
type utf8SanitizingReader struct {
	reader  io.Reader
	pending []byte
}

func newUTF8SanitizingReader(r io.Reader) *utf8SanitizingReader {
	return &utf8SanitizingReader{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

func (s *utf8SanitizingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := 0
	if len(s.pending) > 0 {
		offset = copy(p, s.pending)
		s.pending = s.pending[:0]
	}

	n, err := s.reader.Read(p[offset:])
	n += offset

	if n == 0 {
		return 0, err
	}

	if isAllASCII(p[:n]) {
		return n, err
	}

	sanitized := s.sanitize(p[:n], err == io.EOF)
	return sanitized, err
}

// isAllASCII is the fast path: most CSV content never leaves ASCII.
func isAllASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// sanitize rewrites data in place and returns the number of usable bytes.
// When atEOF is false an incomplete trailing sequence is saved to pending
// for the next read.
func (s *utf8SanitizingReader) sanitize(data []byte, atEOF bool) int {
	if utf8.Valid(data) {
		if !atEOF {
			if trailing := incompleteTrailingBytes(data); trailing > 0 {
				s.pending = append(s.pending, data[len(data)-trailing:]...)
				return len(data) - trailing
			}
		}
		return len(data)
	}

	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])

		if !atEOF && read+size >= len(data) && isIncompleteRune(data[read:]) {
			s.pending = append(s.pending, data[read:]...)
			return write
		}

		if r == utf8.RuneError && size == 1 {
			// '?' keeps the output the same length as the input; the 3-byte
			// replacement character would expand it mid-stream.
			data[write] = '?'
			write++
			read++
		} else {
			copy(data[write:], data[read:read+size])
			write += size
			read += size
		}
	}

	return write
}

// incompleteTrailingBytes returns how many bytes at the end of data could
// be the start of a multi-byte sequence that has not fully arrived yet.
func incompleteTrailingBytes(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			if i < runeLen(b) {
				return i
			}
			return 0
		}
		if b&0xC0 != 0x80 {
			return 0
		}
	}
	return 0
}

// runeLen returns the expected length of a UTF-8 sequence starting with b.
func runeLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0 // continuation byte
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// isIncompleteRune reports whether data could be a truncated sequence.
func isIncompleteRune(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return runeLen(data[0]) > len(data)
}
