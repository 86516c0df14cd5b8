// Package image4bit provides the 4-bit pixel color used by the LED matrix
// framebuffer and a packed image format matching the matrix wire layout.
//
// An LED matrix pixel is a nibble with 16 brightness levels (0-15). Sprites
// additionally use the Transparent sentinel for pixels that must not
// overwrite the destination when composited.
//
// Pixels are packed two per byte, the first pixel of each pair in the low
// nibble:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0xA5     0xC3
//	        (0xA5 = low nibble: 5, high nibble: A=10)
//	        (0xC3 = low nibble: 3, high nibble: C=12)
//
// This package provides:
//
// - Color: a pixel value in [0, 15] or Transparent
// - Model: a color model converting standard Go colors to Color
// - Packed: an image.Image implementation using the wire packing
// - ToRaster: conversion between Cartesian and raster coordinates
//
// Example usage:
//
//	c, err := image4bit.ParseColor("a")
//	if err != nil {
//		// handle error
//	}
//
//	img := image4bit.NewPacked(image.Rect(0, 0, 8, 8))
//	img.SetColor(3, 3, c)
//	println(img.Pix[13]) // Output: 160
package image4bit
