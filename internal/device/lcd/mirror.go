package lcd

import (
	"sync"

	"chessclock/internal/core/model"
)

// Mirror shows the lines of one attached buffer on a shared sink. Writes from
// buffers that were attached earlier are dropped, so a device that is still
// winding down after a reset cannot paint over its successor.
type Mirror struct {
	mu      sync.Mutex
	sink    func([model.DisplayRows]string)
	current *Buffer
}

// NewMirror creates a mirror that forwards to sink.
func NewMirror(sink func([model.DisplayRows]string)) *Mirror {
	return &Mirror{sink: sink}
}

// Attach makes buffer the visible display and pushes its current content.
func (mirror *Mirror) Attach(buffer *Buffer) {
	mirror.mu.Lock()
	mirror.current = buffer
	mirror.mu.Unlock()

	buffer.OnChange(func(lines [model.DisplayRows]string) {
		mirror.forward(buffer, lines)
	})
	mirror.forward(buffer, buffer.Lines())
}

// Current reports whether buffer is the attached display.
func (mirror *Mirror) Current(buffer *Buffer) bool {
	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	return mirror.current == buffer
}

func (mirror *Mirror) forward(from *Buffer, lines [model.DisplayRows]string) {
	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	if from != mirror.current || mirror.sink == nil {
		return
	}
	mirror.sink(lines)
}
