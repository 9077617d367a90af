package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// decodeWorkers bounds how many sprites decode at once.
const decodeWorkers = 4

type batchResult struct {
	id      uint64
	decoded map[string]image.Image
	err     error
}

// Registry preloads sprites in the background and hands them out by id.
// Load, OnReady, Poll and Get are meant for the game goroutine; decoding
// happens elsewhere and is published through Poll.
type Registry struct {
	fsys fs.FS
	// convert uploads a decoded sprite; it runs on the game goroutine.
	convert func(image.Image) *ebiten.Image

	images   map[string]*ebiten.Image
	latest   uint64
	pending  bool
	ready    []func()
	err      error
	mu       sync.Mutex
	finished []batchResult
}

// NewRegistry serves sprites from fsys, where id "x" maps to "x.png".
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:    fsys,
		convert: ebiten.NewImageFromImage,
		images:  make(map[string]*ebiten.Image),
	}
}

// Load starts decoding a batch of sprites and returns immediately. Ready
// callbacks wait for the most recent batch.
func (r *Registry) Load(ids ...string) {
	r.latest++
	r.pending = true
	id := r.latest
	want := append([]string(nil), ids...)

	go func() {
		decoded, err := r.decode(want)
		r.mu.Lock()
		r.finished = append(r.finished, batchResult{id: id, decoded: decoded, err: err})
		r.mu.Unlock()
	}()
}

func (r *Registry) decode(ids []string) (map[string]image.Image, error) {
	var mu sync.Mutex
	out := make(map[string]image.Image, len(ids))

	var g errgroup.Group
	g.SetLimit(decodeWorkers)
	for _, id := range ids {
		g.Go(func() error {
			f, err := r.fsys.Open(id + ".png")
			if err != nil {
				return fmt.Errorf("assets: open %s: %w", id, err)
			}
			defer f.Close()
			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("assets: decode %s: %w", id, err)
			}
			mu.Lock()
			out[id] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// OnReady registers fn to run once, from Poll, after the most recent batch
// has loaded.
func (r *Registry) OnReady(fn func()) {
	if fn != nil {
		r.ready = append(r.ready, fn)
	}
}

// Poll publishes finished batches and fires ready callbacks. A failed batch
// is reported on every call and its callbacks never fire.
func (r *Registry) Poll() error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	finished := r.finished
	r.finished = nil
	r.mu.Unlock()

	for _, res := range finished {
		if res.err != nil {
			log.Printf("assets: batch %d failed: %v", res.id, res.err)
			r.err = res.err
			return r.err
		}
		for id, img := range res.decoded {
			r.images[id] = r.convert(img)
		}
		if res.id == r.latest {
			r.pending = false
		}
	}

	if r.pending || r.latest == 0 || len(r.ready) == 0 {
		return nil
	}
	ready := r.ready
	r.ready = nil
	for _, fn := range ready {
		fn()
	}
	return nil
}

// Ready reports whether the most recent batch has been published.
func (r *Registry) Ready() bool {
	return r.latest > 0 && !r.pending && r.err == nil
}

// Get returns a loaded sprite or nil.
func (r *Registry) Get(id string) *ebiten.Image {
	return r.images[id]
}

// IDs lists every sprite id available in the registry's filesystem.
func (r *Registry) IDs() ([]string, error) {
	names, err := fs.Glob(r.fsys, "*.png")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(names))
	for _, n := range names {
		ids = append(ids, strings.TrimSuffix(path.Base(n), ".png"))
	}
	sort.Strings(ids)
	return ids, nil
}
