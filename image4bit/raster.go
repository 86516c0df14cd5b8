package image4bit

// ToRaster converts a Cartesian point (origin bottom-left) to raster
// coordinates (origin top-left) on a canvas h pixels tall.
//
// The conversion is its own inverse, so it also converts raster coordinates
// back to Cartesian ones.
func ToRaster(x, y, h int) (int, int) {
	return x, h - 1 - y
}

// ToCartesian converts raster coordinates to Cartesian ones. It is the same
// transform as ToRaster.
func ToCartesian(x, y, h int) (int, int) {
	return ToRaster(x, y, h)
}
