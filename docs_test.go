package football_test

import (
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var markdownLink = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)

func TestContributing(t *testing.T) {
	b, err := os.ReadFile("CONTRIBUTING.md")
	require.NoError(t, err)
	doc := string(b)

	first, _, _ := strings.Cut(strings.TrimSpace(doc), "\n")
	require.True(t, strings.HasPrefix(first, "# "), "document must start with a top-level heading, got %q", first)

	for _, section := range []string{"## How to use GitHub", "## License", "## Style guide"} {
		require.Contains(t, doc, section)
	}
	require.Contains(t, doc, "AGPL-3.0")

	links := markdownLink.FindAllStringSubmatch(doc, -1)
	require.NotEmpty(t, links)
	for _, m := range links {
		u, err := url.ParseRequestURI(m[1])
		require.NoError(t, err, "link %q", m[1])
		require.Contains(t, []string{"http", "https"}, u.Scheme, "link %q", m[1])
		require.NotEmpty(t, u.Host, "link %q", m[1])
	}
}
