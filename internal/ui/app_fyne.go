//go:build fyne && cgo

/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"chartboard/internal/config"
	"chartboard/internal/crash"
	"chartboard/internal/domain"
	"chartboard/internal/export"
	"chartboard/internal/geom"
	"chartboard/internal/interaction"
	applog "chartboard/internal/log"
	"chartboard/internal/ranges"
	"chartboard/internal/storage"
	"chartboard/internal/viewer"
)

// settingsAffordanceSize is the side of the gear hit target in the top-right
// corner of every button, in canvas units. Presses there open the property
// dialog and never start a drag or resize.
const settingsAffordanceSize = 16

// Run starts the Fyne-based desktop editor. Pass an optional workspace
// directory to open immediately.
func Run(workspaceDir string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}

	var h *storage.Handle
	defer func() { crash.Recover(h) }()

	fyneApp := app.NewWithID("chartboard")
	w := fyneApp.NewWindow("Chartboard")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1100)
	winH := prefs.IntWithFallback("window.height", 750)
	if winW < 800 {
		winW = 800
	}
	if winH < 600 {
		winH = 600
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	setStatus := func(format string, args ...any) {
		status.SetText(fmt.Sprintf(format, args...))
	}

	reg := ranges.Registry(ranges.NewStatic(nil))
	currentChartID := ""

	chartCanvas := NewChartCanvas()

	// Chart list (left pane)
	chartNames := []string{}
	chartIDs := []string{}
	chartList := widget.NewList(
		func() int { return len(chartNames) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= 0 && int(i) < len(chartNames) {
				o.(*widget.Label).SetText(chartNames[i])
			}
		},
	)

	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()

	refreshDimensionFields := func() {
		if c := currentChart(h, currentChartID); c != nil {
			widthEntry.SetText(strconv.FormatFloat(c.CanvasWidth, 'f', -1, 64))
			heightEntry.SetText(strconv.FormatFloat(c.CanvasHeight, 'f', -1, 64))
		} else {
			widthEntry.SetText("")
			heightEntry.SetText("")
		}
	}

	refreshChartList := func() {
		chartNames = chartNames[:0]
		chartIDs = chartIDs[:0]
		if h != nil {
			for _, c := range h.Workspace.Charts {
				chartNames = append(chartNames, c.Name)
				chartIDs = append(chartIDs, c.ID)
			}
		}
		chartList.Refresh()
	}

	openChart := func(id string) {
		c := currentChart(h, id)
		if c == nil {
			return
		}
		// commit the previously open chart before navigating away
		if currentChartID != "" && currentChartID != id && h != nil {
			if err := storage.Save(h); err != nil {
				l.Error("save on navigate failed", slog.Any("err", err))
			}
		}
		currentChartID = id
		chartCanvas.SetChart(c)
		refreshDimensionFields()
		setStatus("Editing %s", c.Name)
	}

	chartList.OnSelected = func(i widget.ListItemID) {
		if i < 0 || int(i) >= len(chartIDs) {
			return
		}
		openChart(chartIDs[i])
	}

	// Workspace lifecycle ------------------------------------------------

	loadWorkspace := func(root string) {
		nh, err := storage.Open(root)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		h = nh
		reg = ranges.NewStatic(h.Workspace.Ranges)
		currentChartID = ""
		chartCanvas.SetChart(nil)
		refreshChartList()
		refreshDimensionFields()
		if _, err := storage.DetectAndRebuildIndex(context.Background(), h.Root, h.Workspace); err != nil {
			l.Warn("index check failed", slog.Any("err", err))
		}
		setStatus("Opened %s", h.Workspace.Name)
		l.Info("workspace opened", slog.String("root", root))
	}

	saveWorkspace := func() {
		if h == nil {
			return
		}
		if err := storage.Save(h); err != nil {
			dialog.ShowError(err, w)
			return
		}
		if err := storage.UpdateIndex(context.Background(), h.Root, h.Workspace); err != nil {
			l.Warn("index update failed", slog.Any("err", err))
		}
		setStatus("Saved %s", h.Workspace.Name)
	}

	// Button property dialog ---------------------------------------------

	// showButtonDialog edits a draft copy; the stored button changes only on
	// confirm. When isNew and the user cancels, the button is removed again.
	var showButtonDialog func(buttonID string, isNew bool)
	showButtonDialog = func(buttonID string, isNew bool) {
		c := currentChart(h, currentChartID)
		if c == nil {
			return
		}
		b := c.Button(buttonID)
		if b == nil {
			return
		}
		draft := *b

		nameEntry := widget.NewEntry()
		nameEntry.SetText(draft.Name)

		roleSelect := widget.NewSelect([]string{
			string(domain.RoleNormal), string(domain.RoleLabel), string(domain.RoleExit),
		}, nil)
		roleSelect.SetSelected(string(draft.Role))

		linkLabels := []string{domain.LabelOnlyLink}
		linkIDs := []string{domain.LabelOnlyLink}
		for _, r := range reg.All() {
			linkLabels = append(linkLabels, r.Name)
			linkIDs = append(linkIDs, r.ID)
		}
		linkSelect := widget.NewSelect(linkLabels, nil)
		linkSel := 0
		for i, id := range linkIDs {
			if id == draft.LinkedRange {
				linkSel = i
				break
			}
		}
		linkSelect.SetSelected(linkLabels[linkSel])
		// link only applies to normal buttons
		if draft.Role != domain.RoleNormal {
			linkSelect.Disable()
		}
		roleSelect.OnChanged = func(v string) {
			if v == string(domain.RoleNormal) {
				linkSelect.Enable()
			} else {
				linkSelect.Disable()
			}
		}

		colorEntry := widget.NewEntry()
		colorEntry.SetText(colorToHex(draft.Fill))
		colorEntry.Validator = func(s string) error {
			_, err := hexToColor(s)
			return err
		}

		items := []*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Role", roleSelect),
			widget.NewFormItem("Linked range", linkSelect),
			widget.NewFormItem("Fill (hex)", colorEntry),
		}
		dialog.ShowForm("Button properties", "OK", "Cancel", items, func(ok bool) {
			if !ok {
				if isNew {
					if err := storage.RemoveButton(h, c.ID, buttonID); err != nil {
						l.Error("remove cancelled button failed", slog.Any("err", err))
					}
					chartCanvas.Refresh()
				}
				return
			}
			draft.Name = nameEntry.Text
			draft.Role = domain.ButtonRole(roleSelect.Selected)
			for i, lbl := range linkLabels {
				if lbl == linkSelect.Selected {
					draft.LinkedRange = linkIDs[i]
					break
				}
			}
			if fill, err := hexToColor(colorEntry.Text); err == nil {
				draft.Fill = fill
			}
			if err := storage.UpdateButton(h, c.ID, draft); err != nil {
				dialog.ShowError(err, w)
				return
			}
			chartCanvas.Refresh()
			setStatus("Updated %s", draft.Name)
		}, w)
	}

	chartCanvas.OnOpenProperties = func(buttonID string) {
		showButtonDialog(buttonID, false)
	}
	chartCanvas.OnGeometryChanged = func() {
		// geometry already lives in the chart; the canvas repaints itself
	}

	// Toolbar actions ----------------------------------------------------

	addChart := func() {
		if h == nil {
			setStatus("Open a workspace first")
			return
		}
		nameEntry := widget.NewEntry()
		nameEntry.SetText(fmt.Sprintf("Chart %d", len(h.Workspace.Charts)+1))
		dialog.ShowForm("New chart", "Create", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
			func(ok bool) {
				if !ok {
					return
				}
				c, err := storage.AddChart(h, nameEntry.Text,
					cfg.Editor.DefaultCanvasWidth, cfg.Editor.DefaultCanvasHeight)
				if err != nil {
					dialog.ShowError(err, w)
					return
				}
				refreshChartList()
				openChart(c.ID)
			}, w)
	}

	addButton := func() {
		c := currentChart(h, currentChartID)
		if c == nil {
			setStatus("Open a chart first")
			return
		}
		b, err := storage.AddButton(h, c.ID, reg)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		chartCanvas.Refresh()
		showButtonDialog(b.ID, true)
	}

	applyCanvasSize := func() {
		c := currentChart(h, currentChartID)
		if c == nil {
			return
		}
		wv, werr := strconv.ParseFloat(strings.TrimSpace(widthEntry.Text), 64)
		hv, herr := strconv.ParseFloat(strings.TrimSpace(heightEntry.Text), 64)
		if werr != nil || herr != nil {
			// invalid text: revert the fields to the stored values
			refreshDimensionFields()
			setStatus("Invalid canvas size")
			return
		}
		if err := storage.SetCanvasSize(h, c.ID, wv, hv); err != nil {
			dialog.ShowError(err, w)
			return
		}
		// SetCanvasSize may have floored the values; show what was committed
		refreshDimensionFields()
		chartCanvas.Refresh()
		setStatus("Canvas %gx%g", c.CanvasWidth, c.CanvasHeight)
	}
	widthEntry.OnSubmitted = func(string) { applyCanvasSize() }
	heightEntry.OnSubmitted = func(string) { applyCanvasSize() }

	playChart := func() {
		c := currentChart(h, currentChartID)
		if c == nil {
			setStatus("Open a chart first")
			return
		}
		// viewer always shows the committed state
		saveWorkspace()
		showViewerWindow(fyneApp, c, reg, l)
	}

	exportPNG := func() {
		c := currentChart(h, currentChartID)
		if c == nil {
			setStatus("Open a chart first")
			return
		}
		path, err := export.ExportChartPNG(h, c.ID, "", export.PNGOptions{})
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		setStatus("Exported %s", path)
	}

	exportPDF := func() {
		if h == nil {
			setStatus("Open a workspace first")
			return
		}
		path, err := export.ExportPDF(h, "charts.pdf", export.PDFOptions{})
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		setStatus("Exported %s", path)
	}

	toolbar := container.NewHBox(
		widget.NewButton("Add Chart", addChart),
		widget.NewButton("Add Button", addButton),
		widget.NewButton("Play", playChart),
		widget.NewSeparator(),
		widget.NewButton("Save", saveWorkspace),
		widget.NewButton("Export PNG", exportPNG),
		widget.NewButton("Export PDF", exportPDF),
	)

	dims := container.NewHBox(
		widget.NewLabel("Canvas"),
		widthEntry,
		widget.NewLabel("x"),
		heightEntry,
		widget.NewButton("Apply", applyCanvasSize),
	)

	left := container.NewBorder(
		container.NewVBox(widget.NewLabel("Charts"), widget.NewSeparator()),
		nil, nil, nil, chartList,
	)
	center := container.NewBorder(dims, nil, nil, nil, chartCanvas)
	content := container.NewBorder(toolbar, status, left, nil, center)
	w.SetContent(content)

	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		if h != nil {
			if err := storage.Save(h); err != nil {
				l.Error("save on close failed", slog.Any("err", err))
			}
		}
	})

	if strings.TrimSpace(workspaceDir) != "" {
		loadWorkspace(workspaceDir)
	}

	w.ShowAndRun()
	return nil
}

func currentChart(h *storage.Handle, id string) *domain.Chart {
	if h == nil || id == "" {
		return nil
	}
	return h.Workspace.Chart(id)
}

// showViewerWindow opens a read-only play-mode window for the chart. Button
// activations resolve through the viewer rules: exit closes the window, a
// linked range shows its name, a dangling link surfaces a notice.
func showViewerWindow(a fyne.App, c *domain.Chart, reg ranges.Registry, l *slog.Logger) {
	vw := a.NewWindow(fmt.Sprintf("Play — %s", c.Name))
	vc := NewViewerCanvas(c)
	vc.OnActivate = func(b domain.Button) {
		act := viewer.Resolve(b, reg)
		switch act.Kind {
		case viewer.ActionExit:
			vw.Close()
		case viewer.ActionShowRange:
			dialog.ShowInformation("Range", act.Range.Name, vw)
			l.Info("range shown", slog.String("range", act.Range.ID))
		case viewer.ActionNotice:
			dialog.ShowInformation("Notice", act.Notice, vw)
			l.Warn("activation notice", slog.String("notice", act.Notice))
		}
	}
	vw.SetContent(vc)
	vw.Resize(fyne.NewSize(float32(c.CanvasWidth)+40, float32(c.CanvasHeight)+40))
	vw.Show()
}

// ChartCanvas is the interactive editor surface. It letterboxes the chart
// canvas into the widget area and feeds pointer events through an interaction
// session; the viewport mapping is recomputed from the live chart and widget
// size on every event, so canvas resizes mid-gesture stay consistent.
type ChartCanvas struct {
	widget.BaseWidget

	chart   *domain.Chart
	session *interaction.Session

	cursor desktop.Cursor

	// OnOpenProperties fires when the settings affordance of a button is
	// pressed.
	OnOpenProperties func(buttonID string)
	// OnGeometryChanged fires after a session event changed button geometry.
	OnGeometryChanged func()
}

func NewChartCanvas() *ChartCanvas {
	cc := &ChartCanvas{cursor: desktop.DefaultCursor}
	cc.ExtendBaseWidget(cc)
	return cc
}

// SetChart rebinds the canvas to a chart (nil clears it). Any in-progress
// gesture is dropped with the old session.
func (cc *ChartCanvas) SetChart(c *domain.Chart) {
	cc.chart = c
	if c != nil {
		cc.session = interaction.NewSession(c)
	} else {
		cc.session = nil
	}
	cc.Refresh()
}

func (cc *ChartCanvas) PreferredSize() fyne.Size { return fyne.NewSize(800, 600) }

func (cc *ChartCanvas) viewport() geom.Viewport {
	if cc.chart == nil {
		return geom.Viewport{Scale: 1}
	}
	sz := cc.Size()
	return viewer.Fit(
		geom.Size{W: float32(cc.chart.CanvasWidth), H: float32(cc.chart.CanvasHeight)},
		geom.Size{W: sz.Width, H: sz.Height},
	)
}

func (cc *ChartCanvas) toCanvas(pos fyne.Position) geom.Pt {
	return cc.viewport().ToCanvas(geom.Pt{X: pos.X, Y: pos.Y})
}

// settingsHit reports whether p lands on the settings affordance of the
// top-most button under it.
func (cc *ChartCanvas) settingsHit(p geom.Pt) (string, bool) {
	if cc.chart == nil {
		return "", false
	}
	for i := len(cc.chart.Buttons) - 1; i >= 0; i-- {
		b := &cc.chart.Buttons[i]
		r := geom.R(float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height))
		if !r.Contains(p) {
			continue
		}
		ax := r.X + r.W - settingsAffordanceSize
		if p.X >= ax && p.Y <= r.Y+settingsAffordanceSize {
			return b.ID, true
		}
		return "", false
	}
	return "", false
}

// MouseDown begins a drag or resize session, unless the press lands on a
// settings affordance, which opens the property dialog instead.
func (cc *ChartCanvas) MouseDown(ev *desktop.MouseEvent) {
	if cc.session == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p := cc.toCanvas(ev.Position)
	if id, ok := cc.settingsHit(p); ok {
		if cc.OnOpenProperties != nil {
			cc.OnOpenProperties(id)
		}
		return
	}
	cc.handle(interaction.PointerEvent{Phase: interaction.PhaseStart, Pos: p})
}

func (cc *ChartCanvas) MouseUp(ev *desktop.MouseEvent) {
	if cc.session == nil || !cc.session.Active() {
		return
	}
	cc.handle(interaction.PointerEvent{Phase: interaction.PhaseEnd, Pos: cc.toCanvas(ev.Position)})
}

func (cc *ChartCanvas) Dragged(e *fyne.DragEvent) {
	if cc.session == nil || !cc.session.Active() {
		return
	}
	cc.handle(interaction.PointerEvent{Phase: interaction.PhaseMove, Pos: cc.toCanvas(e.Position)})
}

func (cc *ChartCanvas) DragEnd() {
	if cc.session == nil || !cc.session.Active() {
		return
	}
	cc.handle(interaction.PointerEvent{Phase: interaction.PhaseEnd})
}

func (cc *ChartCanvas) handle(ev interaction.PointerEvent) {
	changed := cc.session.Handle(ev)
	if changed && cc.OnGeometryChanged != nil {
		cc.OnGeometryChanged()
	}
	cc.Refresh()
}

// MouseMoved updates the hover cursor from the hit zone while no gesture is
// active.
func (cc *ChartCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if cc.chart == nil || (cc.session != nil && cc.session.Active()) {
		return
	}
	_, zone, ok := interaction.ZoneAt(cc.chart, cc.toCanvas(ev.Position))
	cur := desktop.DefaultCursor
	if ok {
		cur = cursorForZone(zone)
	}
	if cur != cc.cursor {
		cc.cursor = cur
	}
}

func (cc *ChartCanvas) MouseIn(*desktop.MouseEvent) {}
func (cc *ChartCanvas) MouseOut()                   { cc.cursor = desktop.DefaultCursor }

func (cc *ChartCanvas) Cursor() desktop.Cursor { return cc.cursor }

func cursorForZone(z geom.Zone) desktop.Cursor {
	switch z {
	case geom.ZoneN, geom.ZoneS:
		return desktop.VResizeCursor
	case geom.ZoneE, geom.ZoneW:
		return desktop.HResizeCursor
	case geom.ZoneNE, geom.ZoneSW, geom.ZoneNW, geom.ZoneSE:
		// Fyne has no diagonal resize cursors; pointer signals a corner hit
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (cc *ChartCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 40, G: 40, B: 44, A: 255})
	area := canvas.NewRectangle(color.White)
	area.StrokeColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	area.StrokeWidth = 1
	return &chartCanvasRenderer{cc: cc, bg: bg, area: area}
}

type chartCanvasRenderer struct {
	cc     *ChartCanvas
	bg     *canvas.Rectangle
	area   *canvas.Rectangle
	rects  []*canvas.Rectangle
	labels []*canvas.Text
	gears  []*canvas.Text
}

func (r *chartCanvasRenderer) Destroy() {}

func (r *chartCanvasRenderer) MinSize() fyne.Size { return fyne.NewSize(400, 300) }

func (r *chartCanvasRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.area}
	for i := range r.rects {
		objs = append(objs, r.rects[i], r.labels[i], r.gears[i])
	}
	return objs
}

func (r *chartCanvasRenderer) Refresh() {
	r.syncScene()
	r.Layout(r.cc.Size())
	canvas.Refresh(r.cc)
}

// syncScene keeps one rectangle, label, and gear glyph per button.
func (r *chartCanvasRenderer) syncScene() {
	n := 0
	if r.cc.chart != nil {
		n = len(r.cc.chart.Buttons)
	}
	for len(r.rects) < n {
		rect := canvas.NewRectangle(color.White)
		rect.StrokeColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
		rect.StrokeWidth = 1
		r.rects = append(r.rects, rect)
		label := canvas.NewText("", color.Black)
		label.Alignment = fyne.TextAlignCenter
		r.labels = append(r.labels, label)
		gear := canvas.NewText("⚙", color.RGBA{R: 60, G: 60, B: 60, A: 255})
		gear.Alignment = fyne.TextAlignCenter
		r.gears = append(r.gears, gear)
	}
	r.rects = r.rects[:n]
	r.labels = r.labels[:n]
	r.gears = r.gears[:n]
}

func (r *chartCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	c := r.cc.chart
	if c == nil {
		r.area.Hide()
		return
	}
	r.area.Show()
	vp := r.cc.viewport()
	origin := vp.ToDevice(geom.Pt{X: 0, Y: 0})
	r.area.Resize(fyne.NewSize(float32(c.CanvasWidth)*vp.Scale, float32(c.CanvasHeight)*vp.Scale))
	r.area.Move(fyne.NewPos(origin.X, origin.Y))

	r.syncScene()
	for i := range r.rects {
		b := c.Buttons[i]
		tl := vp.ToDevice(geom.Pt{X: float32(b.X), Y: float32(b.Y)})
		bw := float32(b.Width) * vp.Scale
		bh := float32(b.Height) * vp.Scale

		rect := r.rects[i]
		rect.FillColor = color.RGBA{R: b.Fill.R, G: b.Fill.G, B: b.Fill.B, A: b.Fill.A}
		rect.Resize(fyne.NewSize(bw, bh))
		rect.Move(fyne.NewPos(tl.X, tl.Y))

		label := r.labels[i]
		label.Text = b.Name
		label.Resize(fyne.NewSize(bw, bh))
		label.Move(fyne.NewPos(tl.X, tl.Y+bh/2-label.MinSize().Height/2))

		gear := r.gears[i]
		gs := settingsAffordanceSize * vp.Scale
		gear.TextSize = gs * 0.8
		gear.Resize(fyne.NewSize(gs, gs))
		gear.Move(fyne.NewPos(tl.X+bw-gs, tl.Y))
	}
}

// ViewerCanvas is the read-only play-mode surface: same letterboxed rendering
// as the editor, but taps activate buttons instead of moving them.
type ViewerCanvas struct {
	widget.BaseWidget

	chart      *domain.Chart
	OnActivate func(b domain.Button)
}

func NewViewerCanvas(c *domain.Chart) *ViewerCanvas {
	vc := &ViewerCanvas{chart: c}
	vc.ExtendBaseWidget(vc)
	return vc
}

func (vc *ViewerCanvas) Tapped(e *fyne.PointEvent) {
	if vc.chart == nil || vc.OnActivate == nil {
		return
	}
	sz := vc.Size()
	vp := viewer.Fit(
		geom.Size{W: float32(vc.chart.CanvasWidth), H: float32(vc.chart.CanvasHeight)},
		geom.Size{W: sz.Width, H: sz.Height},
	)
	p := vp.ToCanvas(geom.Pt{X: e.Position.X, Y: e.Position.Y})
	for i := len(vc.chart.Buttons) - 1; i >= 0; i-- {
		b := vc.chart.Buttons[i]
		r := geom.R(float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height))
		if r.Contains(p) {
			vc.OnActivate(b)
			return
		}
	}
}

func (vc *ViewerCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 40, G: 40, B: 44, A: 255})
	area := canvas.NewRectangle(color.White)
	area.StrokeColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	area.StrokeWidth = 1
	return &viewerCanvasRenderer{vc: vc, bg: bg, area: area}
}

type viewerCanvasRenderer struct {
	vc     *ViewerCanvas
	bg     *canvas.Rectangle
	area   *canvas.Rectangle
	rects  []*canvas.Rectangle
	labels []*canvas.Text
}

func (r *viewerCanvasRenderer) Destroy()           {}
func (r *viewerCanvasRenderer) MinSize() fyne.Size { return fyne.NewSize(400, 300) }

func (r *viewerCanvasRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.area}
	for i := range r.rects {
		objs = append(objs, r.rects[i], r.labels[i])
	}
	return objs
}

func (r *viewerCanvasRenderer) Refresh() {
	r.Layout(r.vc.Size())
	canvas.Refresh(r.vc)
}

func (r *viewerCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	c := r.vc.chart
	if c == nil {
		r.area.Hide()
		return
	}
	n := len(c.Buttons)
	for len(r.rects) < n {
		rect := canvas.NewRectangle(color.White)
		rect.StrokeColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
		rect.StrokeWidth = 1
		r.rects = append(r.rects, rect)
		label := canvas.NewText("", color.Black)
		label.Alignment = fyne.TextAlignCenter
		r.labels = append(r.labels, label)
	}
	r.rects = r.rects[:n]
	r.labels = r.labels[:n]

	vp := viewer.Fit(
		geom.Size{W: float32(c.CanvasWidth), H: float32(c.CanvasHeight)},
		geom.Size{W: size.Width, H: size.Height},
	)
	origin := vp.ToDevice(geom.Pt{X: 0, Y: 0})
	r.area.Show()
	r.area.Resize(fyne.NewSize(float32(c.CanvasWidth)*vp.Scale, float32(c.CanvasHeight)*vp.Scale))
	r.area.Move(fyne.NewPos(origin.X, origin.Y))

	for i := range r.rects {
		b := c.Buttons[i]
		tl := vp.ToDevice(geom.Pt{X: float32(b.X), Y: float32(b.Y)})
		bw := float32(b.Width) * vp.Scale
		bh := float32(b.Height) * vp.Scale
		rect := r.rects[i]
		rect.FillColor = color.RGBA{R: b.Fill.R, G: b.Fill.G, B: b.Fill.B, A: b.Fill.A}
		rect.Resize(fyne.NewSize(bw, bh))
		rect.Move(fyne.NewPos(tl.X, tl.Y))
		label := r.labels[i]
		label.Text = b.Name
		label.Resize(fyne.NewSize(bw, bh))
		label.Move(fyne.NewPos(tl.X, tl.Y+bh/2-label.MinSize().Height/2))
	}
}

// colorToHex renders a fill as #rrggbb (alpha is not edited in the dialog).
func colorToHex(c domain.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexToColor(s string) (domain.Color, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
	if len(s) != 6 {
		return domain.Color{}, fmt.Errorf("want #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return domain.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return domain.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
