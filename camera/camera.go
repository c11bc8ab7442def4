// Package camera provides the geographic viewport: an equirectangular
// lat/lon to screen projection with pan and zoom.
package camera

import "math"

// tileSize matches web-map convention: at zoom z the full equator spans
// 256 * 2^z pixels.
const tileSize = 256.0

// GeoCamera projects geographic coordinates onto the screen. Zoom uses
// map-style levels; east-west distances are compressed by cos(center
// latitude) so shapes look right away from the equator.
type GeoCamera struct {
	// CenterLat, CenterLon is the geographic point at the viewport center.
	CenterLat, CenterLon float64

	// Zoom level (map-style: +1 doubles the scale)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the given point.
func New(centerLat, centerLon, zoom float64, viewportW, viewportH float32, minZoom, maxZoom float64) *GeoCamera {
	c := &GeoCamera{
		CenterLat: centerLat,
		CenterLon: centerLon,
		Zoom:      zoom,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
	}
	c.SetZoom(zoom)
	return c
}

// pixelsPerDegree returns the north-south scale at the current zoom.
func (c *GeoCamera) pixelsPerDegree() float64 {
	return tileSize * math.Exp2(c.Zoom) / 360.0
}

// lonCompression returns the east-west shrink factor at the viewport center.
func (c *GeoCamera) lonCompression() float64 {
	k := math.Cos(c.CenterLat * math.Pi / 180)
	if k < 0.15 {
		k = 0.15
	}
	return k
}

// Project converts a geographic position to screen coordinates.
// Screen y grows downward, so northward latitude maps to smaller y.
func (c *GeoCamera) Project(lat, lon float64) (sx, sy float32) {
	s := c.pixelsPerDegree()
	sx = c.ViewportW/2 + float32((lon-c.CenterLon)*c.lonCompression()*s)
	sy = c.ViewportH/2 - float32((lat-c.CenterLat)*s)
	return sx, sy
}

// Unproject converts screen coordinates back to a geographic position.
func (c *GeoCamera) Unproject(sx, sy float32) (lat, lon float64) {
	s := c.pixelsPerDegree()
	lon = c.CenterLon + float64(sx-c.ViewportW/2)/(c.lonCompression()*s)
	lat = c.CenterLat - float64(sy-c.ViewportH/2)/s
	return lat, lon
}

// IsVisible reports whether a circle of the given screen radius around the
// geographic point could intersect the viewport (conservative, for culling).
func (c *GeoCamera) IsVisible(lat, lon float64, radius float32) bool {
	sx, sy := c.Project(lat, lon)
	return sx+radius >= 0 && sx-radius <= c.ViewportW &&
		sy+radius >= 0 && sy-radius <= c.ViewportH
}

// Pan shifts the viewport center by a screen-space delta.
func (c *GeoCamera) Pan(dx, dy float32) {
	s := c.pixelsPerDegree()
	c.CenterLon += float64(dx) / (c.lonCompression() * s)
	c.CenterLat -= float64(dy) / s

	if c.CenterLat > 85 {
		c.CenterLat = 85
	} else if c.CenterLat < -85 {
		c.CenterLat = -85
	}
	if c.CenterLon > 180 {
		c.CenterLon -= 360
	} else if c.CenterLon < -180 {
		c.CenterLon += 360
	}
}

// SetZoom sets the zoom level, clamped to the configured range.
func (c *GeoCamera) SetZoom(zoom float64) {
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	} else if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	c.Zoom = zoom
}

// ZoomBy adjusts the zoom level by a delta, keeping the geographic point
// under the given screen position fixed.
func (c *GeoCamera) ZoomBy(delta float64, sx, sy float32) {
	lat, lon := c.Unproject(sx, sy)
	c.SetZoom(c.Zoom + delta)

	// Recompute the center so the anchor maps back to the cursor exactly.
	// Latitude first: lonCompression depends on the new center latitude.
	s := c.pixelsPerDegree()
	c.CenterLat = lat + float64(sy-c.ViewportH/2)/s
	c.CenterLon = lon - float64(sx-c.ViewportW/2)/(c.lonCompression()*s)

	if c.CenterLat > 85 {
		c.CenterLat = 85
	} else if c.CenterLat < -85 {
		c.CenterLat = -85
	}
	if c.CenterLon > 180 {
		c.CenterLon -= 360
	} else if c.CenterLon < -180 {
		c.CenterLon += 360
	}
}

// Resize updates the viewport dimensions after a window resize.
func (c *GeoCamera) Resize(w, h float32) {
	c.ViewportW = w
	c.ViewportH = h
}
