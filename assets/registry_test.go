package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// testRegistry swaps the GPU upload for a stub so tests run headless.
func testRegistry(fsys fstest.MapFS) (*Registry, *int) {
	r := NewRegistry(fsys)
	uploads := 0
	r.convert = func(image.Image) *ebiten.Image {
		uploads++
		return new(ebiten.Image)
	}
	return r, &uploads
}

// pollUntil polls r until done reports true or the deadline passes.
func pollUntil(t *testing.T, r *Registry, done func(error) bool) error {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		err := r.Poll()
		if done(err) {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("registry did not settle before deadline")
	return nil
}

func TestRegistryLoadFiresReadyOnce(t *testing.T) {
	data := pngBytes(t)
	r, uploads := testRegistry(fstest.MapFS{
		"a.png": {Data: data},
		"b.png": {Data: data},
	})

	calls := 0
	r.OnReady(func() { calls++ })
	if err := r.Poll(); err != nil || calls != 0 {
		t.Fatalf("ready fired before Load: err=%v calls=%d", err, calls)
	}

	r.Load("a", "b")
	if err := pollUntil(t, r, func(error) bool { return calls > 0 }); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if err := r.Poll(); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected ready once, got %d", calls)
	}
	if *uploads != 2 {
		t.Fatalf("expected 2 uploads, got %d", *uploads)
	}
	if r.Get("a") == nil || r.Get("b") == nil {
		t.Fatalf("loaded sprites missing")
	}
	if r.Get("missing") != nil {
		t.Fatalf("unknown sprite should be nil")
	}
	if !r.Ready() {
		t.Fatalf("expected Ready after publish")
	}
}

func TestRegistryLoadFailure(t *testing.T) {
	r, _ := testRegistry(fstest.MapFS{
		"a.png":   {Data: pngBytes(t)},
		"bad.png": {Data: []byte("not a png")},
	})

	calls := 0
	r.OnReady(func() { calls++ })
	r.Load("a", "bad")

	err := pollUntil(t, r, func(err error) bool { return err != nil })
	if !strings.Contains(err.Error(), "bad") {
		t.Fatalf("error should name the sprite: %v", err)
	}
	if err2 := r.Poll(); err2 != err {
		t.Fatalf("failure should stick: %v", err2)
	}
	if calls != 0 {
		t.Fatalf("ready fired after failure")
	}
	if r.Ready() {
		t.Fatalf("failed registry reports ready")
	}
}

func TestRegistryIDs(t *testing.T) {
	r, _ := testRegistry(fstest.MapFS{
		"b.png":     {Data: []byte{}},
		"a.png":     {Data: []byte{}},
		"notes.txt": {Data: []byte{}},
	})
	ids, err := r.IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestEmbeddedImagesCoverSprites(t *testing.T) {
	r := NewRegistry(Images())
	ids, err := r.IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	have := make(map[string]bool, len(ids))
	for _, id := range ids {
		have[id] = true
	}
	for _, want := range []string{"water-block", "stone-block", "grass-block", "enemy-bug", "char-boy", "selector"} {
		if !have[want] {
			t.Fatalf("embedded sprite %s missing", want)
		}
	}
}
