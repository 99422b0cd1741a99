// Package sound plays menu cues through the system speaker. Each cue is a
// pair of mono WAV files, one per stereo channel, merged into a cached
// in-memory buffer on first use.
package sound

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"crossbar/pkg/game/cue"
)

// SampleRate is the output rate; cue files at other rates are resampled.
const SampleRate beep.SampleRate = 44100

// PreloadDelay is how long after start-up the cue files are loaded.
const PreloadDelay = time.Second

var baseNames = map[cue.Cue]string{
	cue.Navigate: "ps3/snd_cursor",
	cue.Select:   "ps3/snd_decide",
	cue.Back:     "ps3/snd_cancel",
	cue.Category: "ps3/snd_category_decide",
	cue.Startup:  "ps3/snd_system_ok",
}

// ChannelPaths returns the left and right channel files for c under dir.
func ChannelPaths(dir string, c cue.Cue) (left, right string, err error) {
	base, ok := baseNames[c]
	if !ok {
		return "", "", fmt.Errorf("no sound for cue %s", c)
	}
	base = filepath.Join(dir, filepath.FromSlash(base))
	return base + ".ch0.wav", base + ".ch1.wav", nil
}

// Output receives finished streams. The speaker is the production output.
type Output interface {
	Play(s beep.Streamer) error
}

// Speaker is the default output. The device is opened on first use.
type Speaker struct {
	once sync.Once
	err  error
}

func (o *Speaker) Play(s beep.Streamer) error {
	o.once.Do(func() {
		o.err = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if o.err != nil {
		return fmt.Errorf("open speaker: %w", o.err)
	}
	speaker.Play(s)
	return nil
}

// Player implements cue.Player.
type Player struct {
	dir string
	out Output

	mu     sync.Mutex
	cache  map[cue.Cue]*beep.Buffer
	failed mapset.Set[cue.Cue] // cues whose files could not be loaded
}

// NewPlayer reads cue files from dir. A nil out plays through the speaker.
func NewPlayer(dir string, out Output) *Player {
	if out == nil {
		out = &Speaker{}
	}
	return &Player{
		dir:    dir,
		out:    out,
		cache:  make(map[cue.Cue]*beep.Buffer),
		failed: mapset.New[cue.Cue](),
	}
}

// Play starts c and returns without waiting for it to finish. Overlapping
// cues are mixed. A cue that failed to load reports the error once and is
// silently skipped afterwards.
func (p *Player) Play(c cue.Cue) error {
	buf, err := p.buffer(c)
	if errors.Is(err, errSkipped) {
		return nil
	}
	if err != nil {
		return err
	}
	return p.out.Play(buf.Streamer(0, buf.Len()))
}

// Preload loads every cue concurrently. Files that fail to load are logged
// once and the cue stays silent.
func (p *Player) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(2)
	for _, c := range cue.All {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := p.buffer(c); err != nil && !errors.Is(err, errSkipped) {
				log.Printf("preload %s: %v", c, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// PreloadAfter waits PreloadDelay and preloads, unless ctx ends first.
func (p *Player) PreloadAfter(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(PreloadDelay):
	}
	if err := p.Preload(ctx); err != nil {
		log.Printf("preload cancelled: %v", err)
	}
}

// errSkipped is returned by buffer for a cue that already failed to load.
var errSkipped = errors.New("cue previously failed to load")

func (p *Player) buffer(c cue.Cue) (*beep.Buffer, error) {
	p.mu.Lock()
	buf, ok := p.cache[c]
	failed := p.failed.Has(c)
	p.mu.Unlock()
	if ok {
		return buf, nil
	}
	if failed {
		return nil, errSkipped
	}

	buf, err := p.load(c)

	p.mu.Lock()
	defer p.mu.Unlock()
	if cached, ok := p.cache[c]; ok {
		return cached, nil
	}
	if err != nil {
		if p.failed.Has(c) {
			return nil, errSkipped
		}
		p.failed.Put(c)
		return nil, err
	}
	p.cache[c] = buf
	return buf, nil
}

func (p *Player) load(c cue.Cue) (*beep.Buffer, error) {
	leftPath, rightPath, err := ChannelPaths(p.dir, c)
	if err != nil {
		return nil, err
	}

	var left, right *beep.Buffer
	var g errgroup.Group
	g.Go(func() (err error) {
		left, err = decodeFile(leftPath)
		return err
	})
	g.Go(func() (err error) {
		right, err = decodeFile(rightPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}

	stereo := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	stereo.Append(MergeChannels(resampled(left), resampled(right)))
	return stereo, nil
}

// decodeFile reads a whole WAV file into memory.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

func resampled(b *beep.Buffer) beep.Streamer {
	s := b.Streamer(0, b.Len())
	if b.Format().SampleRate == SampleRate {
		return s
	}
	return beep.Resample(4, b.Format().SampleRate, SampleRate, s)
}
