package infrastructure

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html><head>
<link rel="stylesheet" href="base.css">
<link rel="stylesheet" href="https://fonts.example.com/font.css">
<link rel="icon" href="favicon.ico">
<style>@import url("https://cdn.example.com/x.css"); h1 { background: url(https://cdn.example.com/bg.png) no-repeat; }</style>
<script src="https://cdn.example.com/app.js"></script>
<script>fetch("https://tracker.example.com")</script>
</head>
<body onload="track()">
<h1 style="background-image: url('http://x.example.com/a.png')">Ada</h1>
<img src="https://cdn.example.com/photo.jpg" alt="photo">
<img src="data:image/png;base64,iVBORw0KGgo=" alt="inline">
<iframe src="https://example.com"></iframe>
<a href="https://github.com/ada">github.com/ada</a>
</body></html>`

func TestSelfContained(t *testing.T) {
	assets := fstest.MapFS{
		"base.css": {Data: []byte(`body { color: #222; } .logo { background: url(logo.png); }`)},
	}

	out, err := SelfContained(samplePage, assets)
	require.NoError(t, err)

	assert.Contains(t, out, "body { color: #222; }", "local stylesheet is inlined")
	assert.Contains(t, out, "alt=\"inline\"")
	assert.Contains(t, out, "data:image/png;base64,iVBORw0KGgo=")
	assert.Contains(t, out, `href="https://github.com/ada"`, "hyperlinks are kept")
	assert.Contains(t, out, "Ada</h1>")

	for _, gone := range []string{
		"<link",
		"<script",
		"<iframe",
		"@import",
		"fonts.example.com",
		"cdn.example.com",
		"x.example.com",
		"tracker.example.com",
		"logo.png",
		"onload",
	} {
		assert.NotContains(t, out, gone)
	}
}

func TestSelfContainedWithoutAssetsDropsLocalStylesheets(t *testing.T) {
	out, err := SelfContained(`<html><head><link rel="stylesheet" href="base.css"></head><body>x</body></html>`, nil)
	require.NoError(t, err)
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "<style")
}

func TestSelfContainedRejectsEscapingHref(t *testing.T) {
	assets := fstest.MapFS{"base.css": {Data: []byte("body{}")}}
	for _, href := range []string{"../base.css", "/base.css", "//cdn.example.com/base.css", "file:///etc/passwd"} {
		out, err := SelfContained(`<link rel="stylesheet" href="`+href+`"><p>x</p>`, assets)
		require.NoError(t, err)
		assert.NotContains(t, out, "body{}", href)
	}
}

func TestSelfContainedIsIdempotent(t *testing.T) {
	assets := fstest.MapFS{"base.css": {Data: []byte(`body { margin: 0; }`)}}
	once, err := SelfContained(samplePage, assets)
	require.NoError(t, err)
	twice, err := SelfContained(once, assets)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
