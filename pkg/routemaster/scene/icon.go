package scene

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

var iconCache = internal.NewIconCache()

// Icon rasterizes the drawer toggle glyph in the accent color. open selects
// the close glyph. Results are cached per glyph, size and color.
func (d Drawer) Icon(open bool, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = constants.DefaultDrawerIconSize
	}

	source, name := constants.DrawerMenuIcon, "menu"
	if open {
		source, name = constants.DrawerCloseIcon, "close"
	}

	fill := d.Config.WithDefaults().AccentHex()
	key := fmt.Sprintf("%s/%d/%s", name, size, fill)
	if cached := iconCache.Get(key); cached != nil {
		return cached, nil
	}

	img, err := rasterizeSVG(fmt.Sprintf(source, fill), size)
	if err != nil {
		return nil, fmt.Errorf("rasterize drawer %s icon: %w", name, err)
	}
	iconCache.Set(key, img)
	return img, nil
}

func rasterizeSVG(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}
