// Package crawl — crawl frontier.
// The frontier holds every URL discovered so far and hands out the
// ones not yet fetched in first-seen order.
package crawl

// Frontier is a deduplicating FIFO of discovered URLs. Each URL is
// admitted at most once and replayed in the order it was first added.
type Frontier struct {
	order []string            // admission order
	seen  map[string]struct{} // every URL ever admitted
	next  int                 // position of the next URL to hand out
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]struct{})}
}

// Add admits a URL, dropping it if it was admitted before.
func (f *Frontier) Add(url string) {
	if _, dup := f.seen[url]; dup {
		return
	}
	f.seen[url] = struct{}{}
	f.order = append(f.order, url)
}

// HasNext reports whether any admitted URL has not been handed out yet.
func (f *Frontier) HasNext() bool {
	return f.next < len(f.order)
}

// Next hands out the oldest URL not yet returned.
func (f *Frontier) Next() string {
	url := f.order[f.next]
	f.next++
	return url
}

// Seen returns the number of distinct URLs admitted so far.
func (f *Frontier) Seen() int {
	return len(f.seen)
}

// All returns every admitted URL in first-seen order.
func (f *Frontier) All() []string {
	return f.order
}
