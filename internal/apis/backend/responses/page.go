package responses

import (
	"encoding/json"
	"fmt"
)

// Page is the envelope every list operation returns.
// PageNumber is zero-based and comes from the server as is.
type Page[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages"`
	PageNumber int `json:"pageNumber"`
}

type pageable struct {
	PageNumber *int `json:"pageNumber"`
	PageSize   int  `json:"pageSize"`
}

// wire shape of a spring page; pageable is the string "INSTANCE" when unpaged
type pageWire[T any] struct {
	Content    []T             `json:"content"`
	TotalPages int             `json:"totalPages"`
	Number     int             `json:"number"`
	Pageable   json.RawMessage `json:"pageable"`
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	var w pageWire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	p.Content = w.Content
	if p.Content == nil {
		p.Content = []T{}
	}
	p.TotalPages = w.TotalPages
	p.PageNumber = w.Number

	if len(w.Pageable) > 0 && w.Pageable[0] == '{' {
		var pg pageable
		if err := json.Unmarshal(w.Pageable, &pg); err != nil {
			return fmt.Errorf("page: bad pageable: %w", err)
		}
		if pg.PageNumber != nil {
			p.PageNumber = *pg.PageNumber
		}
	}
	return nil
}

// Check reports whether the page breaks the contract for a request of the given size.
// size <= 0 skips the content length check.
func (p Page[T]) Check(size int) error {
	if p.TotalPages > 0 && (p.PageNumber < 0 || p.PageNumber >= p.TotalPages) {
		return fmt.Errorf("page number %d out of range [0,%d)", p.PageNumber, p.TotalPages)
	}
	if size > 0 && len(p.Content) > size {
		return fmt.Errorf("page holds %d items, requested size %d", len(p.Content), size)
	}
	return nil
}

// Last reports whether no page follows this one.
func (p Page[T]) Last() bool {
	return len(p.Content) == 0 || p.PageNumber+1 >= p.TotalPages
}

// PageView is a page as the web views and the CLI print it: page is 1-based
// and items is never null.
type PageView[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageCount int `json:"page_count"`
}

func (p Page[T]) View() PageView[T] {
	items := p.Content
	if items == nil {
		items = []T{}
	}
	return PageView[T]{Items: items, Page: p.PageNumber + 1, PageCount: p.TotalPages}
}
