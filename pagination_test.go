package scribe

import (
	"fmt"
	"testing"
)

func makePosts(n int) []Post {
	posts := make([]Post, n)
	for i := range posts {
		posts[i] = Post{ID: uint(i + 1), Title: fmt.Sprintf("post %d", i+1)}
	}
	return posts
}

func TestPaginateSliceBounds(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		perPage  int
		wantLen  int
		wantLast int
	}{
		{"first page full", 10, 1, 3, 3, 4},
		{"middle page", 10, 2, 3, 3, 4},
		{"last page partial", 10, 4, 3, 1, 4},
		{"page beyond range", 10, 99, 3, 0, 4},
		{"exact fit", 6, 2, 3, 3, 2},
		{"single post", 1, 1, 5, 1, 1},
		{"empty list", 0, 1, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makePosts(tt.total), tt.page, tt.perPage)
			if len(page.Posts) != tt.wantLen {
				t.Errorf("len(Posts) = %d, want %d", len(page.Posts), tt.wantLen)
			}
			if page.Last != tt.wantLast {
				t.Errorf("Last = %d, want %d", page.Last, tt.wantLast)
			}
		})
	}
}

// Slice length must equal min(P, max(0, N-(page-1)*P)) for every page, and
// Paginate must never panic on out-of-range pages.
func TestPaginateLengthProperty(t *testing.T) {
	for n := 0; n <= 12; n++ {
		posts := makePosts(n)
		for perPage := 1; perPage <= 5; perPage++ {
			for pg := 1; pg <= 7; pg++ {
				got := len(Paginate(posts, pg, perPage).Posts)
				want := n - (pg-1)*perPage
				if want < 0 {
					want = 0
				}
				if want > perPage {
					want = perPage
				}
				if got != want {
					t.Fatalf("N=%d P=%d page=%d: len = %d, want %d", n, perPage, pg, got, want)
				}
			}
		}
	}
}

func TestPaginateWindowContents(t *testing.T) {
	page := Paginate(makePosts(10), 2, 3)
	if page.Posts[0].ID != 4 || page.Posts[2].ID != 6 {
		t.Errorf("page 2 window = [%d..%d], want [4..6]", page.Posts[0].ID, page.Posts[2].ID)
	}
}

func TestPaginateNavLinks(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		wantPrev string
		wantNext string
	}{
		{"first page", 10, 1, "#", "/?page=2"},
		{"middle page", 10, 2, "/?page=1", "/?page=3"},
		{"last page", 10, 4, "/?page=3", "#"},
		{"only page", 2, 1, "#", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makePosts(tt.total), tt.page, 3)
			if page.Prev != tt.wantPrev {
				t.Errorf("Prev = %q, want %q", page.Prev, tt.wantPrev)
			}
			if page.Next != tt.wantNext {
				t.Errorf("Next = %q, want %q", page.Next, tt.wantNext)
			}
		})
	}
}

func TestPageNumberParsing(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := pageNumber(tt.raw); got != tt.want {
			t.Errorf("pageNumber(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
