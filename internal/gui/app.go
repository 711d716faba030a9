// Package gui provides a desktop viewer for clipping scenes using Fyne.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"clip2d"
	"clip2d/render"
	"clip2d/scene"
)

// Zoom limits and the base render size at zoom 1.
const (
	minZoom    = 0.25
	maxZoom    = 4.0
	baseWidth  = 900
	baseHeight = 650
)

// App is the clipping scene viewer application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	sc      *scene.Scene
	pieces  [][]clip2d.Segment
	zoom    float64
	epsilon float64

	view   *canvas.Image
	status *widget.Label
	scroll *container.Scroll
}

// New creates the viewer application.
func New() *App {
	a := &App{
		fyneApp: app.New(),
		zoom:    1.0,
		epsilon: clip2d.DefaultEpsilon,
	}
	a.window = a.fyneApp.NewWindow("clip2d viewer")
	a.window.Resize(fyne.NewSize(960, 720))
	return a
}

// Run starts the application with an empty view.
func (a *App) Run() {
	a.buildUI()
	a.window.ShowAndRun()
}

// RunWithFile starts the application with a scene file preloaded.
func (a *App) RunWithFile(path string) {
	a.buildUI()
	go func() {
		if err := a.loadFile(path); err != nil {
			dialog.ShowError(err, a.window)
		}
	}()
	a.window.ShowAndRun()
}

func (a *App) buildUI() {
	a.view = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	a.view.FillMode = canvas.ImageFillOriginal
	a.view.ScaleMode = canvas.ImageScaleSmooth

	a.status = widget.NewLabel("No scene loaded")
	a.status.Alignment = fyne.TextAlignCenter

	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), a.openScene)
	zoomIn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() { a.setZoom(a.zoom * 1.25) })
	zoomOut := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() { a.setZoom(a.zoom / 1.25) })
	zoomReset := widget.NewButtonWithIcon("", theme.ZoomFitIcon(), func() { a.setZoom(1) })

	toolbar := container.NewHBox(
		openBtn,
		widget.NewSeparator(),
		zoomOut, zoomReset, zoomIn,
	)

	a.scroll = container.NewScroll(a.view)
	a.window.SetContent(container.NewBorder(toolbar, a.status, nil, nil, a.scroll))
}

// openScene shows the file dialog and loads the chosen scene.
func (a *App) openScene() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if rc == nil {
			return // cancelled
		}
		defer rc.Close()

		sc, err := scene.Parse(rc)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setScene(sc)
	}, a.window)
}

func (a *App) loadFile(path string) error {
	sc, err := scene.ParseFile(path)
	if err != nil {
		return err
	}
	a.setScene(sc)
	return nil
}

func (a *App) setScene(sc *scene.Scene) {
	a.sc = sc
	a.pieces = sc.Clip(clip2d.WithEpsilon(a.epsilon))
	a.zoom = 1.0
	a.refresh()
}

func (a *App) setZoom(z float64) {
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	if z == a.zoom {
		return
	}
	a.zoom = z
	a.refresh()
}

// refresh re-renders the scene at the current zoom and updates the view.
func (a *App) refresh() {
	if a.sc == nil {
		return
	}
	opts := render.DefaultOptions()
	opts.Width = int(baseWidth * a.zoom)
	opts.Height = int(baseHeight * a.zoom)

	a.view.Image = render.Render(a.sc, a.pieces, opts)
	a.view.Refresh()
	a.scroll.Refresh()
	a.status.SetText(a.statusText())
}

func (a *App) statusText() string {
	visible := 0
	for _, ps := range a.pieces {
		visible += len(ps)
	}
	algo := "Cyrus-Beck"
	if a.sc.HasRect() {
		algo = fmt.Sprintf("midpoint subdivision, eps=%g", a.epsilon)
	}
	return fmt.Sprintf("%d segments | %s window | %d visible pieces | %s | zoom %.0f%%",
		len(a.sc.Segments), a.sc.WindowName(), visible, algo, a.zoom*100)
}
