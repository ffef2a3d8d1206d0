package constants

// SVG sources for the drawer chrome. Each contains a single %s verb that is
// replaced with the fill color as "#RRGGBB" before rasterizing.
const (
	DrawerMenuIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="%s" d="M3 6h18v2H3zM3 11h18v2H3zM3 16h18v2H3z"/></svg>`

	DrawerCloseIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="%s" d="M19 6.41 17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 19 17.59 13.41 12z"/></svg>`
)
