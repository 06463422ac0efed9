package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(c *Catalog) []string {
	var out []string
	for _, d := range c.List() {
		out = append(out, d.ID)
	}
	return out
}

func TestBundleDiscovery(t *testing.T) {
	c := New(Bundle())

	assert.True(t, c.Discovered())
	assert.Equal(t, []string{
		"artistic",
		"creative-designer",
		"executive",
		"minimalist",
		"modern-professional",
		"traditional",
	}, ids(c))

	d, ok := c.Get("modern-professional")
	require.True(t, ok)
	assert.Equal(t, "Modern Professional", d.Name)
	assert.Equal(t, "Modern", d.Category)
	assert.Equal(t, "/assets/templates/modern-professional-preview.png", d.Preview)
}

func TestEmptyRootUsesFallbackList(t *testing.T) {
	for name, root := range map[string]fstest.MapFS{
		"empty":     {},
		"no gohtml": {"readme.txt": {Data: []byte("x")}},
	} {
		t.Run(name, func(t *testing.T) {
			c := New(root)
			assert.False(t, c.Discovered())
			assert.Equal(t, fallbackIDs, ids(c))
			for _, d := range c.List() {
				assert.NotEmpty(t, d.Name)
				assert.NotEqual(t, genericDescription, d.Description)
			}
		})
	}

	assert.Len(t, New(nil).List(), 6)
}

func TestUnknownIDGetsGeneratedMetadata(t *testing.T) {
	c := New(fstest.MapFS{"my_cool-template.gohtml": {Data: []byte("<p>hi</p>")}})

	d, ok := c.Get("my_cool-template")
	require.True(t, ok)
	assert.Equal(t, "My Cool Template", d.Name)
	assert.Equal(t, genericDescription, d.Description)
	assert.Equal(t, "Standard", d.Category)
}

func TestListReturnsCopy(t *testing.T) {
	c := New(Bundle())
	l := c.List()
	l[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.List()[0].Name)
}

func TestResolve(t *testing.T) {
	root := fstest.MapFS{
		"minimalist.gohtml": {Data: []byte("<h1>{{.summary}}</h1>")},
		"secret.txt":        {Data: []byte("nope")},
		"nested/x.gohtml":   {Data: []byte("nested")},
		"passwd.gohtml":     {Data: []byte("root")},
	}
	c := New(root)

	src, err := c.Resolve("minimalist")
	require.NoError(t, err)
	assert.Equal(t, "<h1>{{.summary}}</h1>", src)

	for _, id := range []string{
		"missing",
		"../passwd",
		"..",
		"nested/x",
		`nested\x`,
		"/etc/passwd",
		"",
		"minimalist.gohtml",
		"secret.txt",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := c.Resolve(id)
			assert.True(t, errors.Is(err, domain.ErrTemplateNotFound), "got %v", err)
		})
	}
}
