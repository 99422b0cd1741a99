package sound

import "github.com/gopxl/beep/v2"

var _ beep.Streamer = (*channelMerge)(nil)

// channelMerge builds a stereo stream from the first channel of two sources.
// It runs for as long as the longer source; the shorter one is padded with
// silence.
type channelMerge struct {
	left, right     beep.Streamer
	leftOK, rightOK bool
	lbuf, rbuf      [][2]float64
}

// MergeChannels returns a streamer whose left channel is left's first channel
// and whose right channel is right's first channel.
func MergeChannels(left, right beep.Streamer) beep.Streamer {
	return &channelMerge{left: left, right: right, leftOK: true, rightOK: true}
}

// Stream implements beep.Streamer.
func (m *channelMerge) Stream(samples [][2]float64) (n int, ok bool) {
	if !m.leftOK && !m.rightOK {
		return 0, false
	}
	if cap(m.lbuf) < len(samples) {
		m.lbuf = make([][2]float64, len(samples))
		m.rbuf = make([][2]float64, len(samples))
	}
	lbuf, rbuf := m.lbuf[:len(samples)], m.rbuf[:len(samples)]

	ln := fill(m.left, lbuf, &m.leftOK)
	rn := fill(m.right, rbuf, &m.rightOK)
	n = max(ln, rn)
	for i := 0; i < n; i++ {
		var l, r float64
		if i < ln {
			l = lbuf[i][0]
		}
		if i < rn {
			r = rbuf[i][0]
		}
		samples[i] = [2]float64{l, r}
	}
	return n, n > 0
}

// Err implements beep.Streamer.
func (m *channelMerge) Err() error {
	if err := m.left.Err(); err != nil {
		return err
	}
	return m.right.Err()
}

// fill streams into buf until it is full or s is drained.
func fill(s beep.Streamer, buf [][2]float64, ok *bool) int {
	n := 0
	for *ok && n < len(buf) {
		got, more := s.Stream(buf[n:])
		n += got
		if !more {
			*ok = false
		} else if got == 0 {
			break
		}
	}
	return n
}
