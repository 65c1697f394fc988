package engine

import (
	"errors"
	"slices"
	"testing"
	"time"
)

type fakeRenderer struct {
	calls    []string
	beginErr error
	sizes    [][2]int
}

func (f *fakeRenderer) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return f.beginErr
}
func (f *fakeRenderer) EndFrame() { f.calls = append(f.calls, "end") }
func (f *fakeRenderer) Present()  { f.calls = append(f.calls, "present") }
func (f *fakeRenderer) Resize(w, h int) {
	f.sizes = append(f.sizes, [2]int{w, h})
}

type fakeDrawable struct {
	r          *fakeRenderer
	prepareErr error
	drawErr    error
}

func (d *fakeDrawable) Prepare() error {
	d.r.calls = append(d.r.calls, "prepare")
	return d.prepareErr
}

func (d *fakeDrawable) DrawCalls() error {
	d.r.calls = append(d.r.calls, "draw")
	return d.drawErr
}

func TestRenderLifecycleOrder(t *testing.T) {
	r := &fakeRenderer{}
	e := NewEngine(WithRenderer(r))

	if err := e.Render(&fakeDrawable{r: r}); err != nil {
		t.Fatal(err)
	}
	want := []string{"prepare", "begin", "draw", "end", "present"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestRenderErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name     string
		d        func(r *fakeRenderer) *fakeDrawable
		beginErr error
		want     []string
	}{
		{
			name: "prepare",
			d:    func(r *fakeRenderer) *fakeDrawable { return &fakeDrawable{r: r, prepareErr: boom} },
			want: []string{"prepare"},
		},
		{
			name:     "begin",
			d:        func(r *fakeRenderer) *fakeDrawable { return &fakeDrawable{r: r} },
			beginErr: boom,
			want:     []string{"prepare", "begin"},
		},
		{
			name: "draw ends the pass without presenting",
			d:    func(r *fakeRenderer) *fakeDrawable { return &fakeDrawable{r: r, drawErr: boom} },
			want: []string{"prepare", "begin", "draw", "end"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRenderer{beginErr: tt.beginErr}
			e := NewEngine(WithRenderer(r))
			if err := e.Render(tt.d(r)); !errors.Is(err, boom) {
				t.Errorf("err = %v, want wrapped boom", err)
			}
			if !slices.Equal(r.calls, tt.want) {
				t.Errorf("calls = %v, want %v", r.calls, tt.want)
			}
		})
	}
}

func TestRenderWithoutRenderer(t *testing.T) {
	e := NewEngine()
	if err := e.Render(&fakeDrawable{r: &fakeRenderer{}}); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("err = %v, want ErrNoRenderer", err)
	}
}

func TestRunFrameRunsOnlyQueuedBatch(t *testing.T) {
	e := NewEngine().(*engine)
	frames := 0
	var tick func()
	tick = func() {
		frames++
		e.RequestFrame(tick)
	}
	e.RequestFrame(tick)

	for range 3 {
		e.runFrame()
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
	if e.Pending() != 1 {
		t.Errorf("pending = %d, want 1", e.Pending())
	}
}

func TestRunFrameRecoversPanic(t *testing.T) {
	e := NewEngine().(*engine)
	e.RequestFrame(func() { panic("lost device") })
	e.runFrame()
	e.RequestFrame(func() {})
	e.runFrame()
	if e.Pending() != 0 {
		t.Error("engine stopped running frames after a recovered panic")
	}
}

func TestResizeCallbackReplacesDefault(t *testing.T) {
	r := &fakeRenderer{}
	e := NewEngine(WithRenderer(r)).(*engine)

	e.handleResize(800, 600)
	if len(r.sizes) != 1 || r.sizes[0] != [2]int{800, 600} {
		t.Fatalf("default resize = %v", r.sizes)
	}

	var got [2]int
	e.SetResizeCallback(func(w, h int) { got = [2]int{w, h} })
	e.handleResize(1024, 768)
	if got != [2]int{1024, 768} {
		t.Errorf("callback got %v", got)
	}
	if len(r.sizes) != 1 {
		t.Error("custom callback also ran the default resize")
	}
}

func TestFrameDuration(t *testing.T) {
	second := float64(time.Second)
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{0, 0},
		{-5, 0},
		{60, time.Second / 60},
		{144, time.Duration(second / 144)},
	}
	for _, tt := range tests {
		if got := frameDuration(tt.fps); got != tt.want {
			t.Errorf("frameDuration(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestWithRenderFrameLimit(t *testing.T) {
	e := NewEngine(WithRenderFrameLimit(30)).(*engine)
	if e.renderFrameLimit != time.Second/30 {
		t.Fatalf("renderFrameLimit = %v, want %v", e.renderFrameLimit, time.Second/30)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Fatalf("renderFrameLimit = %v after uncapping, want 0", e.renderFrameLimit)
	}
}
