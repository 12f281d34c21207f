package crawl_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"scraperbot"
	"scraperbot/crawl"
	"scraperbot/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site builds a crawler over an in-memory link graph. Pages map URL to its
// outgoing links; every page's text is "text of <url>". Ingested URLs are
// recorded in order.
type site struct {
	mu       sync.Mutex
	pages    map[string][]string
	fetched  []string
	ingested []string
}

func newSite(pages map[string][]string) *site {
	return &site{pages: pages}
}

func (s *site) crawler() *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				s.mu.Lock()
				defer s.mu.Unlock()
				if _, ok := s.pages[url]; !ok {
					return "", scraperbot.Errorf(scraperbot.EUNAVAILABLE, "HTTP 404 for %s", url)
				}
				s.fetched = append(s.fetched, url)
				return url, nil // HTML stands in for the URL; the extractor mock keys off it
			},
		},
		Extractor: &mock.PageExtractor{
			ExtractFn: func(html string, pageURL string) (*scraperbot.PageContent, error) {
				s.mu.Lock()
				defer s.mu.Unlock()
				return &scraperbot.PageContent{
					Text:  "text of " + pageURL,
					Links: s.pages[pageURL],
				}, nil
			},
		},
		Ingestor: &mock.Ingestor{
			IngestFn: func(_ context.Context, url string, content string) error {
				s.mu.Lock()
				defer s.mu.Unlock()
				s.ingested = append(s.ingested, url)
				return nil
			},
		},
	}
}

func TestCrawler_Crawl_TwoPageCycleTerminates(t *testing.T) {
	t.Parallel()

	// Page A links to B, B links back to A.
	s := newSite(map[string][]string{
		"https://example.com/":  {"https://example.com/b"},
		"https://example.com/b": {"https://example.com/"},
	})

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Visited)
	assert.Equal(t, 2, result.Ingested)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, []string{"https://example.com/", "https://example.com/b"}, s.ingested)
}

func TestCrawler_Crawl_RespectsDepthBound(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/":   {"https://example.com/d1"},
		"https://example.com/d1": {"https://example.com/d2"},
		"https://example.com/d2": {"https://example.com/d3"},
		"https://example.com/d3": {},
	})

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Visited, "only the base page and its direct links are within depth 1")
	assert.NotContains(t, s.ingested, "https://example.com/d2")
}

func TestCrawler_Crawl_DepthZeroVisitsOnlyBase(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/":  {"https://example.com/b"},
		"https://example.com/b": {},
	})

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Visited)
	assert.Equal(t, []string{"https://example.com/"}, s.ingested)
}

func TestCrawler_Crawl_VisitsEachURLOnce(t *testing.T) {
	t.Parallel()

	// Dense cyclic graph: every page links to every page.
	urls := []string{
		"https://example.com/",
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}
	pages := make(map[string][]string)
	for _, u := range urls {
		pages[u] = urls
	}
	s := newSite(pages)

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/", 10)

	require.NoError(t, err)
	assert.Equal(t, len(urls), result.Visited)
	assert.Len(t, s.fetched, len(urls), "each URL must be fetched exactly once")
}

func TestCrawler_Crawl_SameOriginFilterIsPrefixCheck(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/docs": {
			"https://example.com/docs/intro",  // shares prefix: followed
			"https://example.com/blog/post",   // same host, different prefix: skipped
			"https://example.com/docsu/decoy", // shares literal prefix: followed
			"https://other.example.org/docs",  // different host: skipped
		},
		"https://example.com/docs/intro":  {},
		"https://example.com/docsu/decoy": {},
	})

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/docs", 1)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Visited)
	assert.Contains(t, s.ingested, "https://example.com/docsu/decoy",
		"literal prefix match is followed even across path segments")
	assert.NotContains(t, s.ingested, "https://example.com/blog/post")
}

func TestCrawler_Crawl_TraversalIsDepthFirstInDocumentOrder(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/":    {"https://example.com/a", "https://example.com/b"},
		"https://example.com/a":   {"https://example.com/a/1"},
		"https://example.com/a/1": {},
		"https://example.com/b":   {},
	})

	_, err := s.crawler().Crawl(context.Background(), "https://example.com/", 5)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/a",
		"https://example.com/a/1",
		"https://example.com/b",
	}, s.ingested, "a's subtree must complete before b")
}

func TestCrawler_Crawl_FetchFailureIsContained(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/": {
			"https://example.com/missing", // 404s
			"https://example.com/ok",
		},
		"https://example.com/ok": {},
	})

	result, err := s.crawler().Crawl(context.Background(), "https://example.com/", 1)

	require.NoError(t, err, "a failing branch must not abort the crawl")
	assert.Equal(t, 3, result.Visited)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, s.ingested, "https://example.com/ok")
}

func TestCrawler_Crawl_IngestFailureStillFollowsLinks(t *testing.T) {
	t.Parallel()

	s := newSite(map[string][]string{
		"https://example.com/":  {"https://example.com/b"},
		"https://example.com/b": {},
	})

	c := s.crawler()
	c.Ingestor = &mock.Ingestor{
		IngestFn: func(_ context.Context, url string, _ string) error {
			if url == "https://example.com/" {
				return scraperbot.Errorf(scraperbot.EUNAVAILABLE, "embedding service down")
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			s.ingested = append(s.ingested, url)
			return nil
		},
	}

	result, err := c.Crawl(context.Background(), "https://example.com/", 1)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"https://example.com/b"}, s.ingested,
		"links of a page whose ingestion failed are still followed")
}

func TestCrawler_Crawl_ValidatesArguments(t *testing.T) {
	t.Parallel()

	c := newSite(nil).crawler()

	_, err := c.Crawl(context.Background(), "", 1)
	require.Error(t, err)
	assert.Equal(t, scraperbot.EINVALID, scraperbot.ErrorCode(err))

	_, err = c.Crawl(context.Background(), "https://example.com/", -1)
	require.Error(t, err)
	assert.Equal(t, scraperbot.EINVALID, scraperbot.ErrorCode(err))
}

func TestCrawler_Crawl_StopsOnContextCancellation(t *testing.T) {
	t.Parallel()

	pages := map[string][]string{"https://example.com/": nil}
	for i := 0; i < 50; i++ {
		url := fmt.Sprintf("https://example.com/p%d", i)
		pages["https://example.com/"] = append(pages["https://example.com/"], url)
		pages[url] = nil
	}
	s := newSite(pages)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.crawler().Crawl(ctx, "https://example.com/", 2)

	require.Error(t, err)
	assert.Equal(t, 0, result.Visited)
}
