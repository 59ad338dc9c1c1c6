package blocker

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocks(t *testing.T) {
	b, err := New(Options{
		Domains:       []string{"tracker.example", "Ads.Shop.Example"},
		Patterns:      []string{"*/pixel.gif*", "https://cdn.example.org/*.woff2"},
		ResourceTypes: []string{"media"},
		SkipDefaults:  true,
	})
	require.NoError(t, err)

	tests := []struct {
		name         string
		url          string
		resourceType string
		want         bool
	}{
		{"listed registrable domain", "https://tracker.example/t.js", "script", true},
		{"subdomain of listed domain", "https://eu.tracker.example/t.js", "script", true},
		{"listed host is case-insensitive", "https://ads.shop.example/banner", "image", true},
		{"sibling of listed host", "https://www.shop.example/", "document", false},
		{"url pattern", "https://shop.example/pixel.gif?id=1", "image", true},
		{"font pattern", "https://cdn.example.org/fonts/a.woff2", "font", true},
		{"resource type", "https://shop.example/video.mp4", "media", true},
		{"resource type case", "https://shop.example/video.mp4", "MEDIA", true},
		{"ordinary document", "https://shop.example/product/42", "document", false},
		{"unparseable url", "://bad", "document", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Blocks(tt.url, tt.resourceType))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Run("includes default domains", func(t *testing.T) {
		b, err := New(Options{})
		require.NoError(t, err)
		assert.True(t, b.Blocks("https://www.googletagmanager.com/gtm.js", "script"))
		assert.True(t, b.Blocks("https://stats.g.doubleclick.net/r/collect", "xhr"))
		assert.False(t, b.Blocks("https://www.example.com/", "document"))
	})

	t.Run("skips default domains", func(t *testing.T) {
		b, err := New(Options{SkipDefaults: true})
		require.NoError(t, err)
		assert.False(t, b.Blocks("https://www.googletagmanager.com/gtm.js", "script"))
	})

	t.Run("ignores blank domains", func(t *testing.T) {
		b, err := New(Options{Domains: []string{"", "  "}, SkipDefaults: true})
		require.NoError(t, err)
		assert.Empty(t, b.domains)
	})
}

type stubRequest struct {
	playwright.Request
	url          string
	resourceType string
}

func (r *stubRequest) URL() string          { return r.url }
func (r *stubRequest) ResourceType() string { return r.resourceType }

type stubRoute struct {
	playwright.Route
	req       *stubRequest
	aborted   []string
	continued bool
}

func (r *stubRoute) Request() playwright.Request { return r.req }

func (r *stubRoute) Abort(errorCode ...string) error {
	r.aborted = errorCode
	return nil
}

func (r *stubRoute) Continue(options ...playwright.RouteContinueOptions) error {
	r.continued = true
	return nil
}

func TestHandle(t *testing.T) {
	b, err := New(Options{Domains: []string{"tracker.example"}, SkipDefaults: true})
	require.NoError(t, err)

	blocked := &stubRoute{req: &stubRequest{url: "https://tracker.example/t.js", resourceType: "script"}}
	b.handle(blocked)
	assert.Equal(t, []string{"blockedbyclient"}, blocked.aborted)
	assert.False(t, blocked.continued)

	allowed := &stubRoute{req: &stubRequest{url: "https://shop.example/", resourceType: "document"}}
	b.handle(allowed)
	assert.Nil(t, allowed.aborted)
	assert.True(t, allowed.continued)
}
