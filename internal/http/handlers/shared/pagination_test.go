package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, 20},
		{"page=3&pageSize=50", 3, 50},
		{"page=2&page_size=5", 2, 5},
		{"page=-1&pageSize=1000", 1, 100},
		{"page=abc&pageSize=xyz", 1, 20},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/shop/products?"+tc.query, nil)
		page, pageSize := ParsePagination(c)
		if page != tc.page || pageSize != tc.pageSize {
			t.Fatalf("query %q: want %d/%d got %d/%d", tc.query, tc.page, tc.pageSize, page, pageSize)
		}
	}
}
