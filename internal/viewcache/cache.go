// Package viewcache caches rendered page responses so listing and detail
// views are not re-rendered on every hit. Any successful write to a book
// or genre must invalidate the cached renderings of the views that show
// it before the response goes out, so subsequent reads observe fresh data.
package viewcache

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/puzpuzpuz/xsync/v3"
)

type entry struct {
	status      int
	contentType string
	body        []byte
	storedAt    time.Time
}

// Cache is a TTL'd concurrent map keyed by request path plus query.
type Cache struct {
	entries *xsync.MapOf[string, entry]
	ttl     time.Duration
}

// New creates a cache whose entries expire after ttl. A zero ttl means
// entries only leave the cache through invalidation.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: xsync.NewMapOf[string, entry](),
		ttl:     ttl,
	}
}

func (c *Cache) get(key string) (entry, bool) {
	e, ok := c.entries.Load(key)
	if !ok {
		return entry{}, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		c.entries.Delete(key)
		return entry{}, false
	}
	return e, true
}

func (c *Cache) put(key string, status int, contentType string, body []byte) {
	c.entries.Store(key, entry{
		status:      status,
		contentType: contentType,
		body:        body,
		storedAt:    time.Now(),
	})
}

// Invalidate drops every cached view whose key starts with one of the
// given path prefixes.
func (c *Cache) Invalidate(prefixes ...string) {
	c.entries.Range(func(key string, _ entry) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				c.entries.Delete(key)
				break
			}
		}
		return true
	})
}

// Clear drops every cached view.
func (c *Cache) Clear() {
	c.entries.Clear()
}

// Len reports the number of cached views, expired ones included.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// captureWriter tees the response body so a successful render can be
// stored after the handler runs.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(data []byte) (int, error) {
	w.buf.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *captureWriter) WriteString(data string) (int, error) {
	w.buf.WriteString(data)
	return w.ResponseWriter.WriteString(data)
}

// Handler serves cached renderings of GET requests and records fresh 200
// responses. Attach it to page routes only; API routes stay uncached.
func (c *Cache) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()
		if e, ok := c.get(key); ok {
			ctx.Data(e.status, e.contentType, e.body)
			ctx.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: ctx.Writer}
		ctx.Writer = writer
		ctx.Next()

		if writer.Status() == http.StatusOK {
			c.put(key, writer.Status(), writer.Header().Get("Content-Type"), writer.buf.Bytes())
		}
	}
}
