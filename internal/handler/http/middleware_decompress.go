// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/truvoice/internal/utils"
	"github.com/MKhiriev/truvoice/models"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip/deflate level for API responses.
const compressionLevel = 5

// withCompression gzips JSON and plain-text responses for clients that
// accept it.
var withCompression = middleware.Compress(compressionLevel, "application/json", "text/plain")

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withDecompression transparently inflates request bodies sent with
// Content-Encoding: gzip. A body that is not valid gzip is rejected with 400.
func withDecompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteJSON(w, models.APIResponse{Success: false, Message: "Invalid gzip body"}, http.StatusBadRequest)
			return
		}

		r.Body = &pooledGzipBody{Reader: gzipReader, source: r.Body}
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledGzipBody returns its reader to the pool on Close.
type pooledGzipBody struct {
	*gzip.Reader
	source io.ReadCloser
	once   sync.Once
}

func (b *pooledGzipBody) Close() error {
	var err error
	b.once.Do(func() {
		b.Reader.Close()
		gzipReaderPool.Put(b.Reader)
		err = b.source.Close()
	})
	return err
}
