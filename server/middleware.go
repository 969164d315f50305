package server

import (
	"io"
	"net/http"
	"time"

	"orchea/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CORS header values sent on every response
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "*"
)

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", AllowOrigin)
	h.Set("Access-Control-Allow-Methods", AllowMethods)
	h.Set("Access-Control-Allow-Headers", AllowHeaders)
}

// CORSMiddleware adds CORS headers to responses. The headers are written
// just before the status line, so values set by next are replaced.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &corsWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)

		// next wrote nothing; net/http would send an implicit 200
		if !cw.wroteHeader {
			cw.WriteHeader(http.StatusOK)
		}
	})
}

type corsWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *corsWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		setCORSHeaders(w.Header())
		// 1xx responses are followed by the real one
		if code >= http.StatusOK {
			w.wroteHeader = true
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *corsWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// ReadFrom keeps the sendfile path of the underlying writer available.
func (w *corsWriter) ReadFrom(r io.Reader) (int64, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return io.Copy(w.ResponseWriter, r)
}

func (w *corsWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// RequestLogMiddleware tags each request with an id and logs one line
// once it has been served.
func RequestLogMiddleware(log logger.LoggerInterface) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logger.WithRequestID(r.Context(), uuid.NewString())

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			log.WithContext(ctx).Info("Request served", map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"bytes":    rec.bytes,
				"duration": time.Since(start).String(),
				"remote":   r.RemoteAddr,
			})
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader && code >= http.StatusOK {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

func (r *statusRecorder) ReadFrom(src io.Reader) (int64, error) {
	r.wroteHeader = true
	n, err := io.Copy(r.ResponseWriter, src)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
