//go:build !gtxt

package imgcanvas

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt
// version). With Ebitengine, [New] accepts *ebiten.Image targets
// directly; pixel access goes through the image's At/Set methods, which
// is slow but only exercised by probe measurements and CPU-side
// painting.
//
// Without Ebitengine, Target defaults to [image/draw.Image].
type Target = *ebiten.Image
