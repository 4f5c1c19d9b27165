package overlay

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

type fakeWindow struct {
	pos   image.Point
	size  image.Point
	state State
	title string
	moves []image.Point
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{pos: image.Pt(100, 100), size: image.Pt(245, 270)}
}

func (w *fakeWindow) Position() image.Point { return w.pos }
func (w *fakeWindow) Size() image.Point     { return w.size }
func (w *fakeWindow) State() State          { return w.state }
func (w *fakeWindow) SetTitle(t string)     { w.title = t }

func (w *fakeWindow) Move(p image.Point) {
	w.pos = p
	w.moves = append(w.moves, p)
}

func (w *fakeWindow) Resize(size image.Point) {
	w.size = size
}

type fakePlatform struct {
	cursor image.Point
	styles []StyleFlags
	err    error
}

func (p *fakePlatform) GlobalCursorPosition() image.Point { return p.cursor }

func (p *fakePlatform) SetExtendedWindowStyle(flags StyleFlags) error {
	p.styles = append(p.styles, flags)
	return p.err
}

type countingStore struct {
	mu     sync.Mutex
	writes int
	last   config.Config
	fail   int
}

func (s *countingStore) Save(cfg *config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail > 0 {
		s.fail--
		return errors.New("disk full")
	}
	s.writes++
	s.last = *cfg
	return nil
}

func (s *countingStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type fakeLoader struct {
	fail map[string]bool
	hits []string
}

func (l *fakeLoader) Load(name string) (image.Image, error) {
	l.hits = append(l.hits, name)
	if l.fail[name] {
		return nil, errors.New("corrupt image")
	}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	return img, nil
}

type fakeLister struct {
	names []string
}

func (l fakeLister) List() ([]string, error) { return l.names, nil }

type fakePicker struct {
	answer string
	err    error
	asked  []string
}

func (p *fakePicker) Pick(names []string, current string) (string, error) {
	p.asked = names
	return p.answer, p.err
}

type recordingChime struct {
	ticks []time.Time
}

func (c *recordingChime) Tick(now time.Time) { c.ticks = append(c.ticks, now) }

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// syncSpawn runs background work inline so tests stay deterministic.
func syncSpawn(fn func()) { fn() }
