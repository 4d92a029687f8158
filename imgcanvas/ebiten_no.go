//go:build gtxt

package imgcanvas

import "image/draw"

// Alias to allow compiling the package without Ebitengine (gtxt
// version). Without Ebitengine, Target defaults to [image/draw.Image].
type Target = draw.Image
