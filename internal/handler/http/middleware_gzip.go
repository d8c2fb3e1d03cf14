package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/mvallejo3/do-genai-api/internal/fault"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzip decompresses gzip request bodies and compresses responses for
// clients advertising gzip support. Envelope bodies are JSON and compress
// well; writers and readers are pooled across requests.
func withGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				writeErrorEnvelope(w, r, fault.Validation("Request body must be valid gzip data"))
				return
			}
			r.Body = &pooledGzipBody{reader: zr}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzip: zw}, r)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

type pooledGzipBody struct {
	reader *gzip.Reader
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledGzipBody) Close() error {
	err := b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzip *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	return w.gzip.Write(p)
}
