package hal

import (
	"image"
	"sync"
	"sync/atomic"
)

// MemoryFramebuffer is an RGB565 framebuffer backed by a byte slice.
//
// It backs the host window and the headless runner, and is handy for rendering off-screen.
type MemoryFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents atomic.Uint64
}

// NewMemoryFramebuffer returns a black width x height framebuffer.
func NewMemoryFramebuffer(width, height int) *MemoryFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &MemoryFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemoryFramebuffer) Width() int          { return f.width }
func (f *MemoryFramebuffer) Height() int         { return f.height }
func (f *MemoryFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemoryFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemoryFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemoryFramebuffer) Present() error {
	f.presents.Add(1)
	return nil
}

// Presents reports how many times Present was called.
func (f *MemoryFramebuffer) Presents() uint64 { return f.presents.Load() }

func (f *MemoryFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := PackRGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot converts the current contents to an opaque RGBA image.
func (f *MemoryFramebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.snapshotInto(img.Pix)
	return img
}

func (f *MemoryFramebuffer) snapshotInto(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.buf
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := UnpackRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
