package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/splatcodec/spz/errs"
)

// gzipWriterPool pools gzip writers for reuse across Encode calls,
// mirroring the teacher's pooled-zstd-codec pattern: Reset is cheap and
// avoids re-allocating the compressor's internal tables on every call.
var gzipWriterPool = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// gzipCompress wraps payload in a gzip stream.
func gzipCompress(payload []byte) ([]byte, error) {
	w := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)

	var buf bytes.Buffer
	w.Reset(&buf)

	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGzip, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGzip, err)
	}

	return buf.Bytes(), nil
}

// gzipDecompress reads a complete gzip stream from data.
func gzipDecompress(data []byte) ([]byte, error) {
	r := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(r)

	if err := r.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGzip, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGzip, err)
	}

	return out, nil
}
