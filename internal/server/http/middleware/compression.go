package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/server/http/dto"
)

// maxInflatedBody bounds a decompressed request; every payload here is a small JSON object.
const maxInflatedBody = 1 << 20

// DecompressRequest inflates request bodies sent with Content-Encoding: gzip.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		compressed := c.Request.Body
		inflated, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid gzip body"})
			return
		}
		defer compressed.Close()
		defer inflated.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, inflated, maxInflatedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.Header.Del("Content-Length")
		c.Request.ContentLength = -1
		c.Next()
	}
}

func isGzipEncoded(header string) bool {
	for _, enc := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(enc), "gzip") {
			return true
		}
	}
	return false
}
