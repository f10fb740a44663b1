// Package iconfont draws a single glyph from an icon font.
//
// A [View] holds two state lists, one for the glyph code and one for the
// tint color, and resolves both against its current view state every time
// it draws. Changing a state flag requests a redraw only when one of the
// lists depends on state.
//
// Typefaces come either from the view itself ([View.SetTypeface]) or from
// a shared [Defaults] object that loads a process-wide default lazily:
//
//	defaults := iconfont.NewDefaults(iconfont.AssetLoader("assets"))
//	view := iconfont.NewView(defaults,
//	    iconfont.WithCodes(codes),
//	    iconfont.WithColor(graphics.ColorRed),
//	)
//	view.SetSelected(true)
//	img, err := view.Render(48, 48)
package iconfont
