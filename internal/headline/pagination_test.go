package headline

import (
	"errors"
	"testing"
)

func TestCheckPageAndSize(t *testing.T) {
	cases := []struct {
		page, size int
		ok         bool
	}{
		{0, 10, false},
		{-1, 10, false},
		{1, 0, false},
		{1, 501, false},
		{1, 1, true},
		{1, 500, true},
		{7, 10, true},
	}
	for _, c := range cases {
		err := CheckPageAndSize(c.page, c.size)
		if c.ok && err != nil {
			t.Errorf("CheckPageAndSize(%d, %d) = %v, want nil", c.page, c.size, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("CheckPageAndSize(%d, %d) = %v, want ErrInvalidParameter",
				c.page, c.size, err)
		}
	}
}

func TestCheckResultPage_BeyondLastPage(t *testing.T) {
	p := Page{Content: []Headline{{ID: 1}}, TotalPages: 3}

	err := CheckResultPage(4, p)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if got, want := err.Error(), "Seite Nr. 4 angefordert, aber letzte Seite ist 3."; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestCheckResultPage_GermanGrouping(t *testing.T) {
	err := CheckResultPage(12345, Page{TotalPages: 1000})
	want := "Seite Nr. 12.345 angefordert, aber letzte Seite ist 1.000."
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}
}

func TestCheckResultPage_EmptyContent(t *testing.T) {
	err := CheckResultPage(1, Page{TotalPages: 2})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestCheckResultPage_OK(t *testing.T) {
	p := Page{Content: []Headline{{ID: 1}, {ID: 2}}, TotalPages: 2}
	if err := CheckResultPage(2, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewPage_TotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5000, 500, 10},
	}
	for _, c := range cases {
		p := newPage(nil, PageRequest{Size: c.size}, c.total)
		if p.TotalPages != c.want {
			t.Errorf("total=%d size=%d: TotalPages = %d, want %d",
				c.total, c.size, p.TotalPages, c.want)
		}
		if p.Content == nil {
			t.Errorf("newPage returned nil content")
		}
	}
}
