// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package tracer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const readBufferSize = 1 << 20

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// NewFileReader opens a value change dump for line by line reading.
// Gzip and zstd compressed dumps are detected by their magic bytes.
func NewFileReader(filename string) (LineReader, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("could not stat file: %s, does it exist? %w", filename, err)
	}
	if stat.IsDir() {
		return nil, errors.New("given path to trace file is a directory")
	}
	if stat.Size() == 0 {
		return nil, errors.New("given trace file is empty")
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open trace file: %s, %w", filename, err)
	}

	buffered := bufio.NewReaderSize(file, readBufferSize)
	magic, err := buffered.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(fmt.Errorf("could not read trace file header: %s, %w", filename, err), file.Close())
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gzipReader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("could not create gzip reader for trace file: %s, %w", filename, err), file.Close())
		}
		return newLineReader(filename, gzipReader, multiCloser{gzipReader, file}), nil
	case bytes.HasPrefix(magic, zstdMagic):
		zstdReader, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("could not create zstd reader for trace file: %s, %w", filename, err), file.Close())
		}
		return newLineReader(filename, zstdReader, multiCloser{closerFunc(func() error {
			zstdReader.Close()
			return nil
		}), file}), nil
	default:
		return newLineReader(filename, buffered, file), nil
	}
}

// NewLineReader wraps an already open dump. If r is an io.Closer it is
// closed together with the returned reader.
func NewLineReader(name string, r io.Reader) LineReader {
	closer, ok := r.(io.Closer)
	if !ok {
		closer = closerFunc(func() error { return nil })
	}
	return newLineReader(name, r, closer)
}

//go:generate mockgen -source line_reader.go -destination line_reader_mock.go -package tracer

// LineReader hands out the lines of a dump one at a time.
type LineReader interface {
	// ReadLine returns the next line without its line terminator. The slice
	// is only valid until the next call. io.EOF marks the end of the dump.
	ReadLine() ([]byte, error)
	// Line returns the number of the line returned last, starting at 1.
	Line() uint64
	// Name returns the name of the dump used in diagnostics.
	Name() string
	Close() error
}

type lineReader struct {
	name   string
	reader *bufio.Reader
	closer io.Closer
	buf    []byte // joins lines longer than the bufio buffer
	line   uint64
}

func newLineReader(name string, r io.Reader, closer io.Closer) *lineReader {
	buffered, ok := r.(*bufio.Reader)
	if !ok {
		buffered = bufio.NewReaderSize(r, readBufferSize)
	}
	return &lineReader{
		name:   name,
		reader: buffered,
		closer: closer,
		buf:    make([]byte, 0, 4096),
	}
}

func (r *lineReader) ReadLine() ([]byte, error) {
	frag, err := r.reader.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		r.buf = appendDoubling(r.buf[:0], frag)
		for errors.Is(err, bufio.ErrBufferFull) {
			frag, err = r.reader.ReadSlice('\n')
			r.buf = appendDoubling(r.buf, frag)
		}
		frag = r.buf
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot read line %d of %s: %w", r.line+1, r.name, err)
		}
		if len(frag) == 0 {
			return nil, io.EOF
		}
	}
	r.line++
	return trimLineEnd(frag), nil
}

func (r *lineReader) Line() uint64 {
	return r.line
}

func (r *lineReader) Name() string {
	return r.name
}

func (r *lineReader) Close() error {
	return r.closer.Close()
}

// appendDoubling appends src to dst, doubling the capacity of dst whenever
// it runs out.
func appendDoubling(dst, src []byte) []byte {
	need := len(dst) + len(src)
	if need > cap(dst) {
		size := 2 * cap(dst)
		if size < need {
			size = need
		}
		grown := make([]byte, len(dst), size)
		copy(grown, dst)
		dst = grown
	}
	return append(dst, src...)
}

func trimLineEnd(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

// multiCloser closes all of its members in order and joins their errors.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		err = errors.Join(err, c.Close())
	}
	return err
}
