package model

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ProfileLink is a named profile URL with a short display label.
type ProfileLink struct {
	Kind  string
	URL   string
	Label string
}

// Links returns the non-empty profile links in display order.
func (p PersonalInfo) Links() []ProfileLink {
	candidates := []struct{ kind, url string }{
		{"LinkedIn", p.LinkedIn},
		{"GitHub", p.GitHub},
		{"Website", p.Website},
		{"Portfolio", p.Portfolio},
		{"Naukri", p.Naukri},
	}
	var links []ProfileLink
	for _, c := range candidates {
		u := strings.TrimSpace(c.url)
		if u == "" {
			continue
		}
		links = append(links, ProfileLink{Kind: c.kind, URL: u, Label: LinkLabel(u)})
	}
	return links
}

// LinkLabel shortens a URL to its registrable domain plus path, e.g.
// "https://www.github.com/ada/" becomes "github.com/ada".
func LinkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	label := host
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		label = etld
	}
	if path := strings.Trim(parsed.Path, "/"); path != "" {
		label += "/" + path
	}
	return label
}
