package function

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gin serves h over a gin route. The path is ignored, as with a function trigger.
func Gin(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			raw, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
			body = raw
		}

		req := Request{
			HTTPMethod:            c.Request.Method,
			Headers:               make(map[string]string, len(c.Request.Header)),
			QueryStringParameters: make(map[string]string),
			Body:                  string(body),
		}
		for key := range c.Request.Header {
			req.Headers[key] = c.Request.Header.Get(key)
		}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				req.QueryStringParameters[key] = values[0]
			}
		}

		resp := h.Handle(c.Request.Context(), req)

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Status(resp.StatusCode)
		if resp.Body != "" {
			_, _ = c.Writer.WriteString(resp.Body)
		}
	}
}
