package hal

import "tcanvas/internal/log"

const (
	defaultWidth  = 320
	defaultHeight = 240
)

// Host is the desktop HAL: an in-memory framebuffer, the ebiten keyboard (when built with
// cgo) and a wall-clock tick source.
type Host struct {
	logger Logger
	fb     *MemoryFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with the default 320x240 framebuffer.
func New() HAL {
	return NewHost(defaultWidth, defaultHeight)
}

// NewHost returns a host HAL with a width x height framebuffer.
func NewHost(width, height int) *Host {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Host{
		logger: logLogger{},
		fb:     NewMemoryFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *Host) Logger() Logger   { return h.logger }
func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *Host) Time() Time       { return h.t }

// Framebuffer returns the concrete framebuffer behind Display.
func (h *Host) Framebuffer() *MemoryFramebuffer { return h.fb }

// SetLogger replaces the log sink. A nil logger restores the default.
func (h *Host) SetLogger(l Logger) {
	if l == nil {
		l = logLogger{}
	}
	h.logger = l
}

// InjectKey queues ev as if it came from the keyboard. It reports false when the queue is
// full.
func (h *Host) InjectKey(ev KeyEvent) bool {
	return h.kbd.push(ev)
}

type hostDisplay struct {
	fb *MemoryFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// logLogger forwards device log lines to the process logger.
type logLogger struct{}

func (logLogger) WriteLineString(s string) { log.Infoln(s) }
func (logLogger) WriteLineBytes(b []byte)  { log.Infoln(string(b)) }
