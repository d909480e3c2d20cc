// Package theme resolves the light/dark display mode of the page.
//
// The initial theme is read once from a PreferenceSource when the page is
// mounted; later changes of the environment preference are not observed.
// After that the theme only changes through an explicit toggle. Nothing is
// persisted: a new page view starts from the environment again.
//
// Integration example:
//
//	res := theme.NewResolver(theme.HeaderSource(r), logger)
//	page.Render(w, content, res.Current())
//	...
//	next := res.Toggle()
package theme
