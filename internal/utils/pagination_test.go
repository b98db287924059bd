package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		expected PaginationParams
	}{
		{query: "", expected: PaginationParams{}},
		{query: "?page=3&limit=10", expected: PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{query: "?limit=500", expected: PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{query: "?page=-2", expected: PaginationParams{Page: 1, Limit: 20, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/tasks"+tt.query, nil)
			assert.Equal(t, tt.expected, GetPaginationParams(c))
		})
	}
}
