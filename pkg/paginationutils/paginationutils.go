package paginationutils

import (
	"errors"
	"fmt"
	"math"
	"net/url"
)

var ErrInvalidPage = errors.New("invalid page.")

type PaginationView struct {
	// Pages shown on each side of the current page.
	// With cursorPadding = 2 and 10 pages, page 5 renders 3 4 [5] 6 7.
	cursorPadding      int
	itemsPerPage       int
	itemsCount         int
	pageQueryParamName string
	url                url.URL
}

type PaginationLink struct {
	Link        string `json:"link"`
	PageNumber  string `json:"page_number"`
	Placeholder bool   `json:"placeholder"`
}

func (p *PaginationView) TotalPages() int {
	return int(math.Ceil(float64(p.itemsCount) / float64(p.itemsPerPage)))
}

func (p *PaginationView) pageLinksRange(start, end int) []PaginationLink {
	var result []PaginationLink
	for page := start; page <= end; page++ {
		result = append(result, p.makeLinkFromUrl(page))
	}
	return result
}

func (p *PaginationView) PagesLinks(page int) ([]PaginationLink, error) {
	totalPages := p.TotalPages()

	if page > totalPages || page < 1 {
		return nil, errors.Join(ErrInvalidPage, fmt.Errorf("Total pages: %d. Page:%d", totalPages, page))
	}

	leftBorder := page - p.cursorPadding
	rightBorder := page + p.cursorPadding

	var result []PaginationLink

	if leftBorder <= 2 {
		leftBorder = 1
	} else {
		result = append(result, p.makeLinkFromUrl(1), p.makeLinkPlaceholder())
	}

	trailing := rightBorder >= totalPages-1
	if trailing {
		rightBorder = totalPages
	}

	result = append(result, p.pageLinksRange(leftBorder, rightBorder)...)

	if !trailing {
		result = append(result, p.makeLinkPlaceholder(), p.makeLinkFromUrl(totalPages))
	}

	return result, nil
}

func (p *PaginationView) makeLinkFromUrl(page int) PaginationLink {
	queryValues := p.url.Query()
	queryValues.Set(p.pageQueryParamName, fmt.Sprint(page))

	p.url.RawQuery = queryValues.Encode()

	return PaginationLink{
		Link:       p.url.String(),
		PageNumber: fmt.Sprint(page),
	}
}

func (p *PaginationView) makeLinkPlaceholder() PaginationLink {
	return PaginationLink{
		Link:        "...",
		PageNumber:  "...",
		Placeholder: true,
	}
}

type NewPaginationViewParams struct {
	ItemsPerPage       int
	ItemsCount         int
	PageQueryParamName string
}

func NewPaginationView(url url.URL, params NewPaginationViewParams) *PaginationView {
	return &PaginationView{
		url:                url,
		cursorPadding:      1,
		itemsPerPage:       params.ItemsPerPage,
		itemsCount:         params.ItemsCount,
		pageQueryParamName: params.PageQueryParamName,
	}
}
