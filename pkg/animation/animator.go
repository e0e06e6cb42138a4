package animation

import (
	"fmt"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

// Clip is an inclusive frame range within a tile grid.
type Clip struct {
	Start int
	End   int
}

// Set maps clip names onto frame ranges of one tile grid. Multiple
// animators can share a Set.
type Set struct {
	grid  *TileGrid
	clips map[string]Clip
}

// NewSet returns an empty animation set over grid.
func NewSet(grid *TileGrid) *Set {
	return &Set{grid: grid, clips: make(map[string]Clip)}
}

// Grid returns the underlying tile grid.
func (s *Set) Grid() *TileGrid { return s.grid }

// Add registers a named clip. It fails when the name is taken, the
// range is inverted, or the range exceeds the grid.
func (s *Set) Add(name string, start, end int) error {
	if _, exists := s.clips[name]; exists {
		return fmt.Errorf("animation: clip %q already defined", name)
	}
	if start > end {
		return fmt.Errorf("animation: clip %q range inverted: %d > %d", name, start, end)
	}
	if start < 0 || end >= s.grid.TileCount() {
		return fmt.Errorf("animation: clip %q range [%d, %d] outside grid of %d tiles", name, start, end, s.grid.TileCount())
	}
	s.clips[name] = Clip{Start: start, End: end}
	return nil
}

// Get looks up a clip by name.
func (s *Set) Get(name string) (Clip, bool) {
	clip, ok := s.clips[name]
	return clip, ok
}

// Mode selects how an Animator steps through its clip.
type Mode int

const (
	// ModeStopped holds the current frame.
	ModeStopped Mode = iota
	// ModePlayOnce runs the clip once and stops on the last frame.
	ModePlayOnce
	// ModeLoop wraps from the last frame back to the first.
	ModeLoop
	// ModePingPong bounces between the clip ends, starting forward.
	ModePingPong
	// modePong is the backward leg of ping-pong playback.
	modePong
)

// ModeKeep passed to SetClip keeps the animator's current mode.
const ModeKeep Mode = -1

// Animator steps through one clip of an animation set at a fixed
// frame rate. Each Animator has independent playback state; the Set is
// shared and never mutated.
type Animator struct {
	set     *Set
	mode    Mode
	period  float64
	frame   int
	elapsed float64
	clip    Clip
}

// NewAnimator returns an animator over the set's full frame range.
func NewAnimator(set *Set, mode Mode, fps float64) *Animator {
	return &Animator{
		set:    set,
		mode:   mode,
		period: 1 / fps,
		clip:   Clip{Start: 0, End: set.grid.TileCount() - 1},
	}
}

// Update advances playback by dt seconds, stepping at most one frame.
func (a *Animator) Update(dt float64) {
	if a.mode == ModeStopped {
		return
	}
	a.elapsed += dt
	if a.elapsed > a.period {
		a.elapsed -= a.period
		a.advance()
	}
}

// advance steps one frame according to the playback mode.
func (a *Animator) advance() {
	switch a.mode {
	case modePong:
		a.frame--
		if a.frame == a.clip.Start {
			a.mode = ModePingPong
		}
	case ModeStopped:
	default:
		a.frame++
		if a.frame >= a.clip.End {
			switch {
			case a.mode == ModePlayOnce:
				a.mode = ModeStopped
			case a.mode == ModePingPong:
				a.mode = modePong
			case a.frame > a.clip.End: // ModeLoop
				a.frame = a.clip.Start
			}
		}
	}
}

// SetClip switches to the named clip. Passing ModeKeep leaves the
// playback mode unchanged. Switching to the clip already playing is a
// no-op.
func (a *Animator) SetClip(name string, mode Mode) error {
	clip, ok := a.set.Get(name)
	if !ok {
		return fmt.Errorf("animation: unknown clip %q", name)
	}
	if clip == a.clip {
		return nil
	}
	a.clip = clip
	if mode != ModeKeep {
		a.mode = mode
	}
	if a.mode == modePong {
		a.frame = clip.End
	} else {
		a.frame = clip.Start
	}
	return nil
}

// SetFrame jumps to a frame offset within the current clip. It fails
// when the offset runs past the clip's end.
func (a *Animator) SetFrame(offset int) error {
	frame := a.clip.Start + offset
	if offset < 0 || frame > a.clip.End {
		return fmt.Errorf("animation: frame offset %d outside clip [%d, %d]", offset, a.clip.Start, a.clip.End)
	}
	a.frame = frame
	return nil
}

// Frame returns the current absolute frame index.
func (a *Animator) Frame() int { return a.frame }

// Mode returns the current playback mode.
func (a *Animator) Mode() Mode {
	if a.mode == modePong {
		return ModePingPong
	}
	return a.mode
}

// FrameRect returns the source rectangle of the current frame.
func (a *Animator) FrameRect() (geom.Rectangle, error) {
	return a.set.grid.TileRect(a.frame)
}

// Finished reports whether a play-once animation has stopped.
func (a *Animator) Finished() bool {
	return a.mode == ModeStopped
}
