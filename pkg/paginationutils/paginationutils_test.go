package paginationutils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeView(itemsCount, itemsPerPage int) *PaginationView {
	u, _ := url.Parse("http://localhost/api/v1/articles?page=1")
	return NewPaginationView(*u, NewPaginationViewParams{
		ItemsPerPage:       itemsPerPage,
		ItemsCount:         itemsCount,
		PageQueryParamName: "page",
	})
}

func pageNumbers(links []PaginationLink) []string {
	var result []string
	for _, link := range links {
		result = append(result, link.PageNumber)
	}
	return result
}

func TestPagesLinksSmallSet(t *testing.T) {
	view := makeView(21, 7)

	links, err := view.PagesLinks(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, pageNumbers(links))
}

func TestPagesLinksWindowInMiddle(t *testing.T) {
	view := makeView(100, 10)

	links, err := view.PagesLinks(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, pageNumbers(links))
}

func TestPagesLinksFirstAndLastPage(t *testing.T) {
	view := makeView(100, 10)

	links, err := view.PagesLinks(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "...", "10"}, pageNumbers(links))

	links, err = view.PagesLinks(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "...", "9", "10"}, pageNumbers(links))
}

func TestPagesLinksOutOfRange(t *testing.T) {
	view := makeView(10, 10)

	_, err := view.PagesLinks(0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = view.PagesLinks(2)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPageLinksKeepOtherQueryParams(t *testing.T) {
	u, _ := url.Parse("http://localhost/api/v1/articles?category=edm&page=1")
	view := NewPaginationView(*u, NewPaginationViewParams{
		ItemsPerPage:       5,
		ItemsCount:         10,
		PageQueryParamName: "page",
	})

	links, err := view.PagesLinks(1)
	require.NoError(t, err)
	assert.Contains(t, links[1].Link, "category=edm")
	assert.Contains(t, links[1].Link, "page=2")
}
