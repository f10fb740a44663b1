package iconfont

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-drift/iconfont/pkg/errors"
	"github.com/go-drift/iconfont/pkg/graphics"
	"github.com/go-drift/iconfont/pkg/statelist"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultColor tints the glyph when no color entry matches.
	DefaultColor = graphics.ColorBlack
	// DefaultCode is drawn when no code entry matches; it draws nothing.
	DefaultCode = ""
	// DefaultState is the state of a new view: enabled in a focused window.
	DefaultState = statelist.ViewEnabled | statelist.ViewWindowFocused
)

// Insets are padding distances in pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// View draws one glyph whose code and color depend on the view state.
//
// A View is not safe for concurrent use. The tables it holds are immutable
// and may be shared between views.
type View struct {
	codes    *statelist.Table[string]
	colors   *statelist.Table[graphics.Color]
	typeface *Typeface
	defaults *Defaults
	padding  Insets
	state    statelist.ViewState

	// OnInvalidate is called whenever the view needs to be redrawn.
	OnInvalidate func()

	invalidations int
}

// Option configures a View at construction.
type Option func(*View)

// WithCodes sets the glyph code table.
func WithCodes(codes *statelist.Table[string]) Option {
	return func(v *View) {
		if codes != nil {
			v.codes = codes
		}
	}
}

// WithCode sets a single glyph code for every state.
func WithCode(code string) Option {
	return WithCodes(statelist.ValueOf(code))
}

// WithColors sets the color table.
func WithColors(colors *statelist.Table[graphics.Color]) Option {
	return func(v *View) {
		if colors != nil {
			v.colors = colors
		}
	}
}

// WithColor sets a single color for every state.
func WithColor(c graphics.Color) Option {
	return WithColors(statelist.ValueOf(c))
}

// WithTypeface overrides the default typeface for this view.
func WithTypeface(tf *Typeface) Option {
	return func(v *View) {
		v.typeface = tf
	}
}

// WithPadding sets the padding around the glyph.
func WithPadding(p Insets) Option {
	return func(v *View) {
		v.padding = p
	}
}

// WithState sets the initial view state. Bits outside
// statelist.ViewStateMask are dropped.
func WithState(s statelist.ViewState) Option {
	return func(v *View) {
		v.state = s & statelist.ViewStateMask
	}
}

// NewView creates a view that falls back to defaults for its typeface.
func NewView(defaults *Defaults, opts ...Option) *View {
	v := &View{
		codes:    statelist.ValueOf(DefaultCode),
		colors:   statelist.ValueOf(DefaultColor),
		defaults: defaults,
		state:    DefaultState,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetCodes replaces the code table. nil resets it to DefaultCode.
func (v *View) SetCodes(codes *statelist.Table[string]) {
	if codes == nil {
		codes = statelist.ValueOf(DefaultCode)
	}
	v.codes = codes
	v.invalidate()
}

// SetCode sets a single glyph code for every state.
func (v *View) SetCode(code string) {
	v.SetCodes(statelist.ValueOf(code))
}

// SetColors replaces the color table. nil resets it to DefaultColor.
func (v *View) SetColors(colors *statelist.Table[graphics.Color]) {
	if colors == nil {
		colors = statelist.ValueOf(DefaultColor)
	}
	v.colors = colors
	v.invalidate()
}

// SetColor sets a single color for every state.
func (v *View) SetColor(c graphics.Color) {
	v.SetColors(statelist.ValueOf(c))
}

// SetTypeface overrides the default typeface for this view. nil restores it.
func (v *View) SetTypeface(tf *Typeface) {
	v.typeface = tf
	v.invalidate()
}

// SetPadding changes the padding around the glyph.
func (v *View) SetPadding(p Insets) {
	v.padding = p
	v.invalidate()
}

// SetSelected sets the selected state.
func (v *View) SetSelected(on bool) { v.setState(statelist.ViewSelected, on) }

// SetEnabled sets the enabled state.
func (v *View) SetEnabled(on bool) { v.setState(statelist.ViewEnabled, on) }

// SetFocused sets the focused state.
func (v *View) SetFocused(on bool) { v.setState(statelist.ViewFocused, on) }

// SetPressed sets the pressed state.
func (v *View) SetPressed(on bool) { v.setState(statelist.ViewPressed, on) }

// SetActivated sets the activated state.
func (v *View) SetActivated(on bool) { v.setState(statelist.ViewActivated, on) }

// SetWindowFocused records whether the containing window has focus.
func (v *View) SetWindowFocused(on bool) { v.setState(statelist.ViewWindowFocused, on) }

// SetHovered sets the hovered state.
func (v *View) SetHovered(on bool) { v.setState(statelist.ViewHovered, on) }

// IsSelected reports whether the view is selected.
func (v *View) IsSelected() bool {
	return v.state.Has(statelist.ViewSelected)
}

// IsEnabled reports whether the view is enabled.
func (v *View) IsEnabled() bool {
	return v.state.Has(statelist.ViewEnabled)
}

// IsFocused reports whether the view has input focus.
func (v *View) IsFocused() bool {
	return v.state.Has(statelist.ViewFocused)
}

// IsPressed reports whether the view is pressed.
func (v *View) IsPressed() bool {
	return v.state.Has(statelist.ViewPressed)
}

// IsActivated reports whether the view is activated.
func (v *View) IsActivated() bool {
	return v.state.Has(statelist.ViewActivated)
}

// HasWindowFocus reports whether the view's window has focus.
func (v *View) HasWindowFocus() bool {
	return v.state.Has(statelist.ViewWindowFocused)
}

// IsHovered reports whether a pointer hovers over the view.
func (v *View) IsHovered() bool {
	return v.state.Has(statelist.ViewHovered)
}

// State returns the current view state mask.
func (v *View) State() statelist.ViewState {
	return v.state
}

// Toggle flips flag and reports the new value. Unknown bits are ignored;
// toggling only unknown bits reports false and changes nothing.
func (v *View) Toggle(flag statelist.ViewState) bool {
	flag &= statelist.ViewStateMask
	if flag == 0 {
		return false
	}
	on := !v.state.Has(flag)
	v.setState(flag, on)
	return on
}

func (v *View) setState(flag statelist.ViewState, on bool) {
	next := v.state.With(flag&statelist.ViewStateMask, on)
	if next == v.state {
		return
	}
	v.state = next
	v.drawableStateChanged()
}

func (v *View) drawableStateChanged() {
	if v.colors.IsStateful() || v.codes.IsStateful() {
		v.invalidate()
	}
}

func (v *View) invalidate() {
	v.invalidations++
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
}

// Invalidations returns how many redraws have been requested.
func (v *View) Invalidations() int {
	return v.invalidations
}

// DrawableState returns the active states derived from the view state.
func (v *View) DrawableState() []statelist.State {
	// v.state never carries bits outside ViewStateMask.
	set, err := statelist.StateSetFor(v.state)
	if err != nil {
		return nil
	}
	return set
}

// Resolved returns the glyph code and color for the current state.
func (v *View) Resolved() (string, graphics.Color) {
	active := v.DrawableState()
	return v.codes.Resolve(active, DefaultCode), v.colors.Resolve(active, DefaultColor)
}

func (v *View) resolveTypeface() (*Typeface, error) {
	if v.typeface != nil {
		return v.typeface, nil
	}
	if v.defaults == nil {
		return nil, fmt.Errorf("view has no typeface and no defaults")
	}
	return v.defaults.Typeface()
}

// Draw draws the glyph centered in dst's bounds minus padding. The glyph
// size is the smaller of the content width and height.
func (v *View) Draw(dst draw.Image) error {
	b := dst.Bounds()
	left := b.Min.X + v.padding.Left
	right := b.Max.X - v.padding.Right
	top := b.Min.Y + v.padding.Top
	bottom := b.Max.Y - v.padding.Bottom
	width, height := right-left, bottom-top
	if width <= 0 || height <= 0 {
		return nil
	}

	code, c := v.Resolved()
	if code == "" {
		return nil
	}
	tf, err := v.resolveTypeface()
	if err != nil {
		return err
	}
	face, err := tf.Face(float64(min(width, height)))
	if err != nil {
		return &errors.Error{Op: "iconfont.View.Draw", Kind: errors.KindRender, Err: err}
	}
	defer face.Close()

	m := face.Metrics()
	advance := font.MeasureString(face, code)
	centerX := fixed.I(left+right) / 2
	centerY := fixed.I(top+bottom) / 2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: centerX - advance/2,
			Y: centerY + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(code)
	return nil
}

// Render draws the view into a new transparent image of the given size.
func (v *View) Render(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, &errors.Error{
			Op:   "iconfont.View.Render",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("invalid size %dx%d", width, height),
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := v.Draw(img); err != nil {
		return nil, err
	}
	return img, nil
}
