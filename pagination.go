package scribe

import "strconv"

// Page is one window into the ordered post list, plus the navigation targets
// the index template links to. Prev and Next are "#" placeholders at the
// edges so the template can render disabled buttons without special cases.
type Page struct {
	Posts  []Post
	Number int
	Last   int
	Prev   string
	Next   string
}

// Paginate slices posts into the requested page. lastPage is ceil(N/perPage);
// an out-of-range page yields an empty slice rather than an error, and an
// empty post list never panics (it produces an empty page whose links may
// both be live, which is accepted).
func Paginate(posts []Post, page, perPage int) Page {
	last := (len(posts) + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start < 0 || start > len(posts) {
		start = len(posts)
	}
	if end < start {
		end = start
	}
	if end > len(posts) {
		end = len(posts)
	}

	p := Page{
		Posts:  posts[start:end],
		Number: page,
		Last:   last,
		Prev:   "/?page=" + strconv.Itoa(page-1),
		Next:   "/?page=" + strconv.Itoa(page+1),
	}
	if page == 1 {
		p.Prev = "#"
	}
	if page == last {
		p.Next = "#"
	}
	return p
}

// pageNumber parses the ?page= query value, defaulting to 1 when absent or
// non-numeric.
func pageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
