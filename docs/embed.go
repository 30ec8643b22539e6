package docs

import "embed"

// FS contains long-form Markdown docs bundled with the sift binary.
//
//go:embed querylang.md
var FS embed.FS
