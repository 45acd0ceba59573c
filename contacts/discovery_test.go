package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCandidatePages_InPageLinksFirst verifies that links found on the
// homepage come before the well-known paths.
func TestCandidatePages_InPageLinksFirst(t *testing.T) {
	html := `<html><body>
		<a href="/meet-the-team">Our Team</a>
		<a href="/pricing">Pricing</a>
	</body></html>`

	pages, err := CandidatePages(html, "https://aisummit.example")

	require.NoError(t, err)
	require.NotEmpty(t, pages)
	assert.Equal(t, "https://aisummit.example/meet-the-team", pages[0])
	assert.NotContains(t, pages, "https://aisummit.example/pricing")
	assert.Contains(t, pages, "https://aisummit.example/contact")
}

// TestCandidatePages_SameHostOnly verifies that off-site links are
// never proposed, even when their text matches a contact keyword.
func TestCandidatePages_SameHostOnly(t *testing.T) {
	html := `<html><body>
		<a href="https://other.example/contact">Contact us</a>
		<a href="/about-us">About Us</a>
	</body></html>`

	pages, err := CandidatePages(html, "https://aisummit.example")

	require.NoError(t, err)
	for _, page := range pages {
		assert.NotContains(t, page, "other.example")
	}
	assert.Equal(t, "https://aisummit.example/about-us", pages[0])
}

// TestCandidatePages_Deduplicated verifies that a discovered link
// suppresses the matching well-known path.
func TestCandidatePages_Deduplicated(t *testing.T) {
	html := `<html><body>
		<a href="/contact">Contact</a>
		<a href="/contact">Contact (footer)</a>
	</body></html>`

	pages, err := CandidatePages(html, "https://aisummit.example")

	require.NoError(t, err)
	count := 0
	for _, page := range pages {
		if page == "https://aisummit.example/contact" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "https://aisummit.example/contact", pages[0])
}

// TestCandidatePages_SkipsAnchorsAndMailto verifies fragment, mailto,
// and tel links are ignored.
func TestCandidatePages_SkipsAnchorsAndMailto(t *testing.T) {
	html := `<html><body>
		<a href="#team">Team</a>
		<a href="mailto:team@aisummit.example">Contact</a>
		<a href="tel:+4930123">Contact</a>
	</body></html>`

	pages, err := CandidatePages(html, "https://aisummit.example")

	require.NoError(t, err)
	// Only the well-known paths remain.
	assert.Len(t, pages, len(WellKnownPaths))
	assert.Equal(t, "https://aisummit.example/contact", pages[0])
}

// TestCandidatePages_WellKnownPathsAlwaysProposed verifies the
// conventional paths are appended even on a linkless homepage.
func TestCandidatePages_WellKnownPathsAlwaysProposed(t *testing.T) {
	pages, err := CandidatePages("<html><body></body></html>", "https://aisummit.example")

	require.NoError(t, err)
	require.Len(t, pages, len(WellKnownPaths))
	for i, path := range WellKnownPaths {
		assert.Equal(t, "https://aisummit.example"+path, pages[i])
	}
}

// TestCandidatePages_InvalidBaseURL verifies an unusable base URL is
// an error.
func TestCandidatePages_InvalidBaseURL(t *testing.T) {
	_, err := CandidatePages("<html></html>", "not-a-url")
	assert.Error(t, err)
}
