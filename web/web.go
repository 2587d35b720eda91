// Package web holds the browser frontend served by the API.
package web

import "embed"

//go:embed newindex.html newverify.html newstyle.css newscript.js
var Assets embed.FS

const IndexFile = "newindex.html"
