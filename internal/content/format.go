package content

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
)

// PreviewKind selects the rendering path for a file tab.
type PreviewKind int

const (
	PreviewNone  PreviewKind = iota // Editable text
	PreviewImage                    // Raster image, decoded off the UI thread
	PreviewSVG                      // SVG embedded into an HTML wrapper
)

// rasterExtensions are the raster image formats that are never loaded as
// editable text.
var rasterExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".tiff": true, ".bmp": true, ".heic": true, ".heif": true,
	".webp": true,
}

// PreviewFor classifies a path by extension.
func PreviewFor(path string) PreviewKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case rasterExtensions[ext]:
		return PreviewImage
	case ext == ".svg":
		return PreviewSVG
	default:
		return PreviewNone
	}
}

// IsPreviewPath reports whether the path bypasses text editing entirely.
// Such tabs cache the empty-string sentinel instead of file content.
func IsPreviewPath(path string) bool {
	return PreviewFor(path) != PreviewNone
}

// SVGDocument wraps raw SVG bytes into a minimal HTML document with the
// image base64-embedded, suitable for the embedded web renderer.
func SVGDocument(svg []byte) string {
	encoded := base64.StdEncoding.EncodeToString(svg)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
html,body{margin:0;height:100%%;display:flex;align-items:center;justify-content:center;background:transparent}
img{max-width:100%%;max-height:100%%}
</style></head>
<body><img src="data:image/svg+xml;base64,%s" alt=""></body>
</html>`, encoded)
}
