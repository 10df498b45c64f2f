package wordgrid

import (
	"errors"
	"io"
)

var errInvalidWhence = errors.New("wordgrid: invalid whence")

// bitWriter packs values of arbitrary bit width into a byte stream, most
// significant bit first. The first write error is kept and reported by Flush.
type bitWriter struct {
	io.Writer
	cache uint8
	used  int
	err   error
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{Writer: w}
}

func (w *bitWriter) WriteBits(data uint64, n int) error {
	var mask uint8
	for n > 0 && w.err == nil {
		written := n
		if written+w.used > 8 {
			written = 8 - w.used
		}

		mask = uint8(uint16(1<<(written)) - 1)
		w.used += written
		w.cache = (w.cache << written) | byte(data>>(n-written))&mask

		if w.used == 8 {
			_, w.err = w.Write([]byte{w.cache})
			w.used = 0
			w.cache = 0
		}

		n -= written
	}
	return w.err
}

func (w *bitWriter) Flush() error {
	if w.used > 0 && w.err == nil {
		_, w.err = w.Write([]byte{w.cache << (8 - w.used)})
		w.used = 0
		w.cache = 0
	}
	return w.err
}

func (w *bitWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}

	if closer, ok := w.Writer.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

var maskTop = []byte{
	0xff,
	0x7f,
	0x3f,
	0x1f,
	0x0f,
	0x07,
	0x03,
	0x01,
	0x00,
}

// bitSeeker reads bits from a given offset in bits. Reads past the end of the
// underlying data return zero bits and set Err.
type bitSeeker struct {
	io.ReaderAt
	p      int64
	buffer []byte
	err    error
}

func newBitSeeker(r io.ReaderAt) *bitSeeker {
	return &bitSeeker{ReaderAt: r, buffer: make([]byte, 1)}
}

func (r *bitSeeker) nextByte() byte {
	if r.err != nil {
		return 0
	}
	if _, err := r.ReadAt(r.buffer, r.p>>3); err != nil {
		r.err = err
		return 0
	}
	return r.buffer[0]
}

func (r *bitSeeker) ReadBits(n int64) uint64 {
	if n <= 0 {
		return 0
	}

	if r.p&7+n <= 8 {
		ret := uint64((r.nextByte() & maskTop[r.p&7]) >> (8 - r.p&7 - n))
		r.p += n
		return ret
	}

	// case 2: bits lie incompletely in the given byte
	var result uint64
	result = uint64((r.nextByte() & maskTop[r.p&7]))

	l := 8 - r.p&7
	r.p += l
	n -= l

	for n >= 8 {
		result = (result << 8) | uint64(r.nextByte())
		r.p += 8
		n -= 8
	}

	if n > 0 {
		result = (result << n) | uint64(r.nextByte()>>(8-n))
		r.p += n
	}

	return result
}

func (r *bitSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		r.p = offset
	case io.SeekCurrent:
		r.p += offset
	default:
		return r.p, errInvalidWhence
	}
	return r.p, nil
}

func (r *bitSeeker) Tell() int64 {
	return r.p
}

func (r *bitSeeker) Err() error {
	return r.err
}
