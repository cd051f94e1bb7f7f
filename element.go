package panel

import "github.com/gopanel/panel/text"

// SizingStrategy selects how an element's baked size is resolved from
// its intrinsic size during the bake pass.
type SizingStrategy uint8

const (
	// Whatever keeps the intrinsic size unmodified; min/max constraints
	// apply later, when the fill size is read.
	Whatever SizingStrategy = iota

	// Chonker greedily claims all available max space per axis.
	Chonker

	// Smollest greedily shrinks toward the min constraint per axis.
	Smollest
)

// String returns the string representation of the strategy.
func (s SizingStrategy) String() string {
	switch s {
	case Whatever:
		return "Whatever"
	case Chonker:
		return "Chonker"
	case Smollest:
		return "Smollest"
	default:
		return "Unknown"
	}
}

// Alignment positions rendered text lines within their box.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Dim is an optional pixel dimension: either Auto (unset) or a fixed
// number of pixels.
type Dim struct {
	px  int
	set bool
}

// Auto returns an unset dimension.
func Auto() Dim { return Dim{} }

// Px returns a dimension of n pixels.
func Px(n int) Dim { return Dim{px: n, set: true} }

// Get returns the pixel value and whether it is set.
func (d Dim) Get() (int, bool) { return d.px, d.set }

// Or returns the pixel value, or fallback when unset.
func (d Dim) Or(fallback int) int {
	if d.set {
		return d.px
	}
	return fallback
}

// IsSet reports whether the dimension is set.
func (d Dim) IsSet() bool { return d.set }

// Dimensions pairs a width and a height in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Size is an element's sizing policy: author-set min/max constraints, a
// strategy, and the baked intrinsic size computed each frame by the bake
// pass (never author-set).
type Size struct {
	MinWidth  Dim
	MaxWidth  Dim
	MinHeight Dim
	MaxHeight Dim
	Strategy  SizingStrategy

	// Baked intrinsic size. Valid only after BakeSize has run since the
	// last content or constraint mutation.
	bakedWidth  int
	bakedHeight int
}

// Padding holds four non-negative edge insets added outside an
// element's content box.
type Padding struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Flex marks which edges of an element may absorb leftover space when it
// is a child of a Row or Stack.
type Flex struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// Style is an element's flat visual style: a foreground/background color
// pair and a shared, read-only font face handle. The face outlives every
// element referencing it and is never mutated.
type Style struct {
	Foreground Pixel
	Background Pixel
	Font       text.Face
}

// UpdateFunc is a per-frame update hook bound at construction time. It
// is invoked with the element it is attached to and the panel's external
// data, before the element's children recurse. It may mutate any field
// of the element except the tree shape of its own node, and must not
// retain the data reference beyond the call.
type UpdateFunc[D any] func(*Element[D], *D)

// Element is a node in the UI layout tree.
type Element[D any] struct {
	Size  Size
	Pad   Padding
	Flex  Flex
	Style Style

	// Scroll is an optional vertical pixel offset, meaningful only on
	// Stack content.
	Scroll Dim

	// Content is the element's tagged payload.
	Content Content[D]

	update UpdateFunc[D]
}

// Content is the tagged payload of an Element: text, a wrapped
// paragraph, a pre-rendered pixel block, a horizontal row, or a vertical
// stack. It is a closed sum; layout and compositing switch over it
// exhaustively.
type Content[D any] interface {
	content()
}

// Text is simple single-line text with an alignment.
type Text struct {
	S     string
	Align Alignment
}

func (Text) content() {}

// Paragraph is wrapped multi-line text with an alignment. The wrapped
// text is re-wrapped, not recreated, on every bake.
type Paragraph struct {
	Text  *text.WrappedText
	Align Alignment
}

func (Paragraph) content() {}

// Custom is a pre-rendered fixed pixel block, e.g. a chart.
type Custom struct {
	Block *Block
}

func (Custom) content() {}

// Row is a horizontal container. It owns its children outright.
type Row[D any] struct {
	Children []*Element[D]
}

func (Row[D]) content() {}

// Stack is a vertical container. It owns its children outright.
type Stack[D any] struct {
	Children []*Element[D]
}

func (Stack[D]) content() {}

// Still creates an element with no update hook. The data type parameter
// cannot be inferred from the content argument and is given explicitly,
// as in Still[appData](face, Text{S: "hi"}).
func Still[D any](face text.Face, c Content[D]) *Element[D] {
	return &Element[D]{
		Style:   Style{Foreground: Black, Background: White, Font: face},
		Content: c,
	}
}

// Dynamic creates an element whose update hook runs once per frame,
// before its children recurse.
func Dynamic[D any](update UpdateFunc[D], face text.Face, c Content[D]) *Element[D] {
	e := Still[D](face, c)
	e.update = update
	return e
}

// TextOf creates a still element with left-aligned single-line text.
func TextOf[D any](face text.Face, s string) *Element[D] {
	return Still[D](face, Text{S: s})
}

// ParagraphOf creates a still element with a paragraph of s. The text is
// wrapped during the first bake pass.
func ParagraphOf[D any](face text.Face, s string) *Element[D] {
	return Still[D](face, Paragraph{Text: text.NewWrapped(s, 0, face)})
}

// RowOf creates a still horizontal container of children.
func RowOf[D any](face text.Face, children ...*Element[D]) *Element[D] {
	return Still[D](face, Row[D]{Children: children})
}

// StackOf creates a still vertical container of children.
func StackOf[D any](face text.Face, children ...*Element[D]) *Element[D] {
	return Still[D](face, Stack[D]{Children: children})
}

// WithMinWidth sets the minimum width constraint.
func (e *Element[D]) WithMinWidth(px int) *Element[D] {
	e.Size.MinWidth = Px(px)
	return e
}

// WithMaxWidth sets the maximum width constraint.
func (e *Element[D]) WithMaxWidth(px int) *Element[D] {
	e.Size.MaxWidth = Px(px)
	return e
}

// WithMinHeight sets the minimum height constraint.
func (e *Element[D]) WithMinHeight(px int) *Element[D] {
	e.Size.MinHeight = Px(px)
	return e
}

// WithMaxHeight sets the maximum height constraint.
func (e *Element[D]) WithMaxHeight(px int) *Element[D] {
	e.Size.MaxHeight = Px(px)
	return e
}

// WithStrategy sets the sizing strategy.
func (e *Element[D]) WithStrategy(s SizingStrategy) *Element[D] {
	e.Size.Strategy = s
	return e
}

// WithPadding sets all four padding insets to px.
func (e *Element[D]) WithPadding(px int) *Element[D] {
	e.Pad = Padding{Top: px, Bottom: px, Left: px, Right: px}
	return e
}

// WithPaddingTop sets the top padding inset.
func (e *Element[D]) WithPaddingTop(px int) *Element[D] {
	e.Pad.Top = px
	return e
}

// WithPaddingBottom sets the bottom padding inset.
func (e *Element[D]) WithPaddingBottom(px int) *Element[D] {
	e.Pad.Bottom = px
	return e
}

// WithPaddingLeft sets the left padding inset.
func (e *Element[D]) WithPaddingLeft(px int) *Element[D] {
	e.Pad.Left = px
	return e
}

// WithPaddingRight sets the right padding inset.
func (e *Element[D]) WithPaddingRight(px int) *Element[D] {
	e.Pad.Right = px
	return e
}

// WithFlexTop marks the top edge as able to absorb leftover space.
func (e *Element[D]) WithFlexTop(flex bool) *Element[D] {
	e.Flex.Top = flex
	return e
}

// WithFlexBottom marks the bottom edge as able to absorb leftover space.
func (e *Element[D]) WithFlexBottom(flex bool) *Element[D] {
	e.Flex.Bottom = flex
	return e
}

// WithFlexLeft marks the left edge as able to absorb leftover space.
func (e *Element[D]) WithFlexLeft(flex bool) *Element[D] {
	e.Flex.Left = flex
	return e
}

// WithFlexRight marks the right edge as able to absorb leftover space.
func (e *Element[D]) WithFlexRight(flex bool) *Element[D] {
	e.Flex.Right = flex
	return e
}

// WithForeground sets the foreground color.
func (e *Element[D]) WithForeground(p Pixel) *Element[D] {
	e.Style.Foreground = p
	return e
}

// WithBackground sets the background color.
func (e *Element[D]) WithBackground(p Pixel) *Element[D] {
	e.Style.Background = p
	return e
}

// WithScroll sets the vertical scroll offset. Meaningful only on Stack
// content.
func (e *Element[D]) WithScroll(offset int) *Element[D] {
	e.Scroll = Px(offset)
	return e
}
