package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationGetPage(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})

	t.Run(`negative values use defaults`, func(t *testing.T) {
		page, limit := Pagination{Page: -1, Limit: -5}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})

	t.Run(`explicit values`, func(t *testing.T) {
		page, limit := Pagination{Page: 3, Limit: 25}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 25, limit)
	})

	t.Run(`limit capped at 100`, func(t *testing.T) {
		_, limit := Pagination{Limit: 100}.GetPage()
		require.Equal(t, 100, limit)
		page, limit := Pagination{Page: 2, Limit: 500}.GetPage()
		require.Equal(t, 2, page)
		require.Equal(t, 100, limit)
	})
}
