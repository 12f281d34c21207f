package crawl

// entry is a pending crawl target with its depth from the base URL.
type entry struct {
	url   string
	depth int
}

// Frontier is an in-memory crawl work-list with an exact visited set. Pop
// order is last-in-first-out, so pushing a page's links in reverse document
// order yields a depth-first traversal in document order.
//
// The frontier belongs to a single crawl session and is not safe for
// concurrent use; each crawl runs on one goroutine.
type Frontier struct {
	stack   []entry
	visited map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		visited: make(map[string]struct{}),
	}
}

// Push adds a URL to the work-list. Duplicates are allowed here; visited-set
// filtering happens when the URL is accepted via Visit.
func (f *Frontier) Push(url string, depth int) {
	f.stack = append(f.stack, entry{url: url, depth: depth})
}

// Pop removes and returns the most recently pushed URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (url string, depth int, ok bool) {
	if len(f.stack) == 0 {
		return "", 0, false
	}
	e := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return e.url, e.depth, true
}

// Len returns the number of pending URLs.
func (f *Frontier) Len() int {
	return len(f.stack)
}

// Visit marks a URL as visited. It returns false if the URL was visited
// before, in which case the caller must skip it.
func (f *Frontier) Visit(url string) bool {
	if _, ok := f.visited[url]; ok {
		return false
	}
	f.visited[url] = struct{}{}
	return true
}

// Seen returns true if the URL has been visited.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.visited[url]
	return ok
}
