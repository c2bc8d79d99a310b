package ui

import (
	"image/color"
	"sync"

	"Simon/control"
	"Simon/game"
	"Simon/i18n"
	"Simon/panel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// UI constants
const (
	FontSizeScore float32 = 24.0

	// Dimensions
	PanelSize    = 160
	PanelGap     = 6
	CornerRadius = 18.0
	ControlGap   = 5
	WindowWidth  = 2*PanelSize + 3*PanelGap
	WindowHeight = 2*PanelSize + 150
)

var (
	// BackgroundColor is the window background behind the panels.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
	PanelTapped(panel.ID)
	SetStartButton(*widget.Button)
	SetStopButton(*widget.Button)
	SetBestLabel(*widget.Label)
	UpdateControlButtonState()
}

// PanelWidget is one colored panel. Its class name plays the role of a DOM
// class list: the panel is lit while it carries the active token.
type PanelWidget struct {
	ID panel.ID

	mu    sync.RWMutex
	class string

	rect              *canvas.Rectangle
	tappableContainer *TappableContainer
}

// NewPanelWidget creates the widget for id.
func NewPanelWidget(a App, id panel.ID) *PanelWidget {
	w := &PanelWidget{ID: id, class: id.ElementID() + " panel"}

	w.rect = canvas.NewRectangle(id.Color())
	w.rect.CornerRadius = CornerRadius
	w.rect.SetMinSize(fyne.NewSize(PanelSize, PanelSize))

	w.tappableContainer = NewTappableContainer(w.rect, func() {
		if a != nil {
			a.PanelTapped(id)
		}
	}, nil)
	return w
}

// ClassName implements game.Element.
func (w *PanelWidget) ClassName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.class
}

// SetClassName implements game.Element and repaints the panel.
func (w *PanelWidget) SetClassName(c string) {
	w.mu.Lock()
	w.class = c
	w.mu.Unlock()
	w.UpdateDisplay()
}

// SetTextContent implements game.Element. Panels carry no visible text.
func (w *PanelWidget) SetTextContent(string) {}

// Lit reports whether the panel currently carries the active marker.
func (w *PanelWidget) Lit() bool {
	return panel.IsActive(w.ClassName())
}

// FillColor returns the color matching the current class.
func (w *PanelWidget) FillColor() color.NRGBA {
	if w.Lit() {
		return w.ID.LitColor()
	}
	return w.ID.Color()
}

func (w *PanelWidget) UpdateDisplay() {
	fill := w.FillColor()
	fyne.Do(func() {
		w.rect.FillColor = fill
		w.rect.Refresh()
	})
}

func (w *PanelWidget) GetCanvasObject() fyne.CanvasObject {
	return w.tappableContainer
}

// ScoreText is the user_score region.
type ScoreText struct {
	mu      sync.RWMutex
	class   string
	content string
	text    *canvas.Text
}

func NewScoreText() *ScoreText {
	t := canvas.NewText(game.FormatScore(0), color.White)
	t.TextStyle.Bold = true
	t.TextSize = FontSizeScore
	t.Alignment = fyne.TextAlignCenter
	return &ScoreText{class: panel.ScoreElementID, content: t.Text, text: t}
}

func (s *ScoreText) ClassName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.class
}

func (s *ScoreText) SetClassName(c string) {
	s.mu.Lock()
	s.class = c
	s.mu.Unlock()
}

// SetTextContent replaces the displayed text.
func (s *ScoreText) SetTextContent(v string) {
	s.mu.Lock()
	s.content = v
	s.mu.Unlock()

	fyne.Do(func() {
		s.text.Text = v
		s.text.Refresh()
	})
}

// Text returns the last text set on the score display.
func (s *ScoreText) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

func (s *ScoreText) GetCanvasObject() fyne.CanvasObject {
	return s.text
}

// Board is the host page backing a game: every addressable region by ID.
type Board struct {
	mu       sync.RWMutex
	elements map[string]game.Element

	Panels [panel.Count]*PanelWidget
	Score  *ScoreText
}

// NewBoard creates the four panels and the score display.
func NewBoard(a App) *Board {
	b := &Board{elements: make(map[string]game.Element), Score: NewScoreText()}
	for _, id := range panel.All {
		b.Panels[id] = NewPanelWidget(a, id)
		b.elements[id.ElementID()] = b.Panels[id]
	}
	b.elements[panel.ScoreElementID] = b.Score
	return b
}

// ElementByID implements game.Page.
func (b *Board) ElementByID(id string) (game.Element, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	el, ok := b.elements[id]
	return el, ok
}

// Remove detaches a region from the page.
func (b *Board) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.elements, id)
}

func BuildPanelGrid(b *Board) *fyne.Container {
	grid := container.New(layout.NewGridLayoutWithColumns(2))
	for _, p := range b.Panels {
		grid.Add(p.GetCanvasObject())
	}
	return container.NewPadded(grid)
}

func BuildFooter(a App) (*widget.Button, *widget.Button, *widget.Label, fyne.CanvasObject) {
	startButton := widget.NewButton(i18n.T("Start"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdStart})
	})

	stopButton := widget.NewButton(i18n.T("Stop"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdStop})
	})
	stopButton.Hide()

	bestLabel := widget.NewLabel(i18n.T("Best") + ": 0")
	bestLabel.Alignment = fyne.TextAlignCenter

	controlStack := container.NewStack(startButton, stopButton)

	buttonsSpacer := canvas.NewRectangle(color.Transparent)
	buttonsSpacer.SetMinSize(fyne.NewSize(ControlGap, 0))

	footer := container.NewHBox(
		layout.NewSpacer(),
		controlStack,
		buttonsSpacer,
		bestLabel,
		layout.NewSpacer(),
	)
	return startButton, stopButton, bestLabel, footer
}

func CreateMainWindow(a App, fyneApp fyne.App, b *Board) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "Simon"
	}
	w := fyneApp.NewWindow(title)

	startButton, stopButton, bestLabel, footer := BuildFooter(a)
	a.SetStartButton(startButton)
	a.SetStopButton(stopButton)
	a.SetBestLabel(bestLabel)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	bottomSpacer := canvas.NewRectangle(color.Transparent)
	bottomSpacer.SetMinSize(fyne.NewSize(0, ControlGap))

	content := container.NewVBox(
		BuildPanelGrid(b),
		b.Score.GetCanvasObject(),
		bottomSpacer,
		footer,
	)

	a.UpdateControlButtonState()

	w.SetContent(content)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.SetFixedSize(true)
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
