// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Coders are pooled: the dashboard client sends bursts of small JSON bodies
// and stamping out a fresh gzip state per request is measurable waste.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently inflates gzip request bodies and, when the caller
// advertises support, compresses responses. Handlers downstream never see
// the encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(req) {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// inflateRequestBody swaps req.Body for a pooled gzip reader over the
// original body. Reports false when the payload is not valid gzip.
func inflateRequestBody(req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		return false
	}

	req.Body = &inflatedBody{
		Reader: zr,
		release: func() {
			zr.Close()
			gzipReaderPool.Put(zr)
		},
	}
	req.Header.Del("Content-Encoding")

	return true
}

// inflatedBody returns the wrapped gzip reader to its pool on Close.
type inflatedBody struct {
	io.Reader
	release func()
}

func (b *inflatedBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
