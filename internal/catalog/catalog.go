package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"resume-builder/internal/domain"
)

// Suffix is appended to a template id to find its resource.
const Suffix = ".gohtml"

//go:embed templates
var bundle embed.FS

// Bundle returns the templates compiled into the binary.
func Bundle() fs.FS {
	sub, err := fs.Sub(bundle, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// fallbackIDs is listed when discovery finds nothing.
var fallbackIDs = []string{
	"minimalist",
	"modern-professional",
	"traditional",
	"executive",
	"creative-designer",
	"artistic",
}

var validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Catalog lists and resolves templates. It is immutable after New and safe
// for concurrent use.
type Catalog struct {
	root        fs.FS
	descriptors []domain.TemplateDescriptor
	index       map[string]int
	discovered  bool
}

// New scans root for *.gohtml resources. When none are found the catalog
// lists the built-in fallback ids instead.
func New(root fs.FS) *Catalog {
	c := &Catalog{root: root, index: make(map[string]int)}

	var ids []string
	if root != nil {
		matches, _ := fs.Glob(root, "*"+Suffix)
		for _, m := range matches {
			id := strings.TrimSuffix(path.Base(m), Suffix)
			if validID.MatchString(id) {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) > 0 {
		sort.Strings(ids)
		c.discovered = true
	} else {
		ids = fallbackIDs
	}

	for i, id := range ids {
		c.descriptors = append(c.descriptors, describe(id))
		c.index[id] = i
	}
	return c
}

// Discovered reports whether the listing came from the template root rather
// than the fallback list.
func (c *Catalog) Discovered() bool { return c.discovered }

// List returns a copy of the template descriptors.
func (c *Catalog) List() []domain.TemplateDescriptor {
	out := make([]domain.TemplateDescriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

func (c *Catalog) Get(id string) (domain.TemplateDescriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.TemplateDescriptor{}, false
	}
	return c.descriptors[i], true
}

// Resolve returns the template source for id. Ids that could escape the
// template root are rejected without touching it.
func (c *Catalog) Resolve(id string) (string, error) {
	if !validID.MatchString(id) {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	if c.root == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	b, err := fs.ReadFile(c.root, id+Suffix)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("read template %q: %w", id, err)
	}
	return string(b), nil
}

// Assets exposes the template root for stylesheet inlining.
func (c *Catalog) Assets() fs.FS { return c.root }
