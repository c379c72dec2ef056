package alpm

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var (
	bzip2Magic = []byte("BZh")
	gzipMagic  = []byte{0x1f, 0x8b}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress returns a reader for the uncompressed archive, detecting the
// compression from the leading magic bytes. Unrecognised data are passed
// through unchanged.
func decompress(reader io.Reader) (io.ReadCloser, error) {
	bufReader := bufio.NewReader(reader)
	header, err := bufReader.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		gzipReader, err := gzip.NewReader(bufReader)
		if err != nil {
			return nil, err
		}
		return gzipReader, nil
	case bytes.HasPrefix(header, zstdMagic):
		decoder, err := zstd.NewReader(bufReader)
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	case bytes.HasPrefix(header, xzMagic):
		xzReader, err := xz.NewReader(bufReader)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xzReader), nil
	case bytes.HasPrefix(header, bzip2Magic):
		return io.NopCloser(bzip2.NewReader(bufReader)), nil
	}
	return io.NopCloser(bufReader), nil
}
