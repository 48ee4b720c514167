//go:build gui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"dockbar/appicon"
	"dockbar/render"
)

// IconWidget presents one compositor inside the dock container. It forwards
// hover and tap events to the compositor's mutators and repaints from the
// composited offscreen frame whenever the compositor marks itself dirty.
type IconWidget struct {
	widget.BaseWidget
	comp   *appicon.Compositor
	onTap  func()
	scroll render.ScrollDirection
}

func NewIconWidget(comp *appicon.Compositor, onTap func()) *IconWidget {
	w := &IconWidget{comp: comp, onTap: onTap}
	w.ExtendBaseWidget(w)
	return w
}

func (w *IconWidget) MinSize() fyne.Size {
	cw, ch := w.comp.CanvasSize()
	return fyne.NewSize(float32(cw), float32(ch))
}

// MouseIn arms hover feedback; windows>1 also arms the scroll affordance.
func (w *IconWidget) MouseIn(*desktop.MouseEvent) {
	if w.comp.Model().WindowCount("") > 1 {
		w.comp.SetScrollDirection(w.scroll)
	}
	w.comp.SetMouseOver(true)
}

func (w *IconWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *IconWidget) MouseOut() {
	w.comp.SetMouseOver(false)
	w.comp.SetScrollDirection(render.ScrollNone)
}

// Tapped launches the app when it is not running, otherwise activates it.
func (w *IconWidget) Tapped(*fyne.PointEvent) {
	if w.onTap != nil {
		w.onTap()
	}
}

// Scrolled cycles the armed scroll direction so the affordance arrow
// matches the next cycle direction.
func (w *IconWidget) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		w.scroll = render.ScrollUp
	} else {
		w.scroll = render.ScrollDown
	}
	w.comp.SetScrollDirection(w.scroll)
}

func (w *IconWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(w.comp.Redraw())
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	return &iconRenderer{widget: w, img: img}
}

type iconRenderer struct {
	widget *IconWidget
	img    *canvas.Image
}

func (r *iconRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
}

func (r *iconRenderer) MinSize() fyne.Size {
	return r.widget.MinSize()
}

func (r *iconRenderer) Refresh() {
	if r.widget.comp.Dirty() {
		r.img.Image = r.widget.comp.Redraw()
	}
	r.img.Refresh()
}

func (r *iconRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img}
}

func (r *iconRenderer) Destroy() {}
