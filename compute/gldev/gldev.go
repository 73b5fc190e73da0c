// Package gldev implements compute.Device on OpenGL 4.6 compute shaders.
// Buffers are GL buffer objects bound as uniform or shader storage blocks,
// storage images are R32F 3D textures bound to image units and sampled
// images are 3D textures with linear filtering and repeat addressing.
//
// All methods issue GL calls and must run on the thread owning a current
// OpenGL 4.6 context.
package gldev

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/isoterrain/compute"
	"go.uber.org/zap"
)

// Device is an OpenGL compute.Device.
type Device struct {
	log       *zap.Logger
	drawSetup func() error
	buffers   []uint32
	textures  []uint32
	closed    bool
}

var _ compute.Device = (*Device)(nil)

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the device logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Device) {
		if log != nil {
			d.log = log
		}
	}
}

// WithDrawSetup sets the function binding the render program and vertex
// state before an indirect draw. The vertex buffer is bound as shader
// storage block compute.SlotTriangles so the vertex shader can fetch
// records by gl_VertexID.
func WithDrawSetup(fn func() error) Option {
	return func(d *Device) { d.drawSetup = fn }
}

// New returns a device using the current GL context.
func New(opts ...Option) *Device {
	d := &Device{log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type buffer struct {
	name  string
	usage compute.Usage
	words int
	id    uint32
}

func (b *buffer) Name() string         { return b.name }
func (b *buffer) Usage() compute.Usage { return b.usage }
func (b *buffer) Len() int             { return b.words }

type image struct {
	name   string
	usage  compute.Usage
	extent [3]int
	id     uint32
}

func (im *image) Name() string         { return im.name }
func (im *image) Usage() compute.Usage { return im.usage }
func (im *image) Extent() [3]int       { return im.extent }

type pipeline struct {
	kernel compute.Kernel
	prog   glgl.Program
}

func (p *pipeline) Kernel() compute.Kernel { return p.kernel }

var errClosed = errors.New("device closed")

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error %#x", op, code)
	}
	return nil
}

func (d *Device) NewBuffer(name string, words int, usage compute.Usage) (compute.Buffer, error) {
	if d.closed {
		return nil, errClosed
	}
	if words <= 0 {
		return nil, fmt.Errorf("buffer %s: invalid size %d", name, words)
	}
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, id)
	gl.BufferData(gl.COPY_WRITE_BUFFER, 4*words, nil, gl.DYNAMIC_COPY)
	gl.ClearBufferData(gl.COPY_WRITE_BUFFER, gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT, nil)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
	if err := glError("allocating buffer " + name); err != nil {
		gl.DeleteBuffers(1, &id)
		return nil, err
	}
	d.buffers = append(d.buffers, id)
	d.log.Debug("new buffer", zap.String("name", name), zap.Int("words", words), zap.Uint32("id", id))
	return &buffer{name: name, usage: usage, words: words, id: id}, nil
}

func (d *Device) NewImage3D(name string, extent [3]int, usage compute.Usage) (compute.Image, error) {
	if d.closed {
		return nil, errClosed
	}
	for _, e := range extent {
		if e <= 0 {
			return nil, fmt.Errorf("image %s: invalid extent %v", name, extent)
		}
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_3D, id)
	gl.TexStorage3D(gl.TEXTURE_3D, 1, gl.R32F, int32(extent[0]), int32(extent[1]), int32(extent[2]))
	filter, wrap := int32(gl.NEAREST), int32(gl.CLAMP_TO_EDGE)
	if usage.Has(compute.UsageSampled) {
		filter, wrap = gl.LINEAR, gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, wrap)
	gl.BindTexture(gl.TEXTURE_3D, 0)
	if err := glError("allocating image " + name); err != nil {
		gl.DeleteTextures(1, &id)
		return nil, err
	}
	d.textures = append(d.textures, id)
	d.log.Debug("new image", zap.String("name", name), zap.Ints("extent", extent[:]), zap.Uint32("id", id))
	return &image{name: name, usage: usage, extent: extent, id: id}, nil
}

// NewPipeline compiles the embedded GLSL source of k.
func (d *Device) NewPipeline(k compute.Kernel) (compute.Pipeline, error) {
	if d.closed {
		return nil, errClosed
	}
	src, err := kernelSource(k)
	if err != nil {
		return nil, err
	}
	combined, err := glgl.ParseCombined(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	prog, err := glgl.CompileProgram(combined)
	if err != nil {
		return nil, fmt.Errorf("compiling %s kernel: %w\n%s", k.Name, err, combined.Compute)
	}
	d.log.Debug("compiled kernel", zap.String("kernel", k.Name))
	return &pipeline{kernel: k, prog: prog}, nil
}

// ReadBuffer copies the start of b into dst after all writes to it completed.
func (d *Device) ReadBuffer(b compute.Buffer, dst []uint32) error {
	buf, err := glBuffer(b)
	if err != nil {
		return err
	}
	if len(dst) > buf.words {
		return fmt.Errorf("read of %d words from %d word buffer %s", len(dst), buf.words, buf.name)
	}
	if len(dst) == 0 {
		return nil
	}
	gl.MemoryBarrier(gl.BUFFER_UPDATE_BARRIER_BIT)
	gl.BindBuffer(gl.COPY_READ_BUFFER, buf.id)
	gl.GetBufferSubData(gl.COPY_READ_BUFFER, 0, 4*len(dst), gl.Ptr(&dst[0]))
	gl.BindBuffer(gl.COPY_READ_BUFFER, 0)
	return glError("reading buffer " + buf.name)
}

// Close deletes every buffer and texture created by d.
func (d *Device) Close() error {
	if d.closed {
		return errClosed
	}
	d.closed = true
	if len(d.buffers) > 0 {
		gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
	}
	if len(d.textures) > 0 {
		gl.DeleteTextures(int32(len(d.textures)), &d.textures[0])
	}
	d.buffers, d.textures = nil, nil
	return glError("closing device")
}

// Submit executes the commands of rec and blocks on a fence until the GPU
// finished them or ctx is done.
func (d *Device) Submit(ctx context.Context, rec compute.Recorder) error {
	if d.closed {
		return errClosed
	}
	r, ok := rec.(*Recorder)
	if !ok || r.dev != d {
		return fmt.Errorf("recorder of type %T not begun on this device", rec)
	}
	if r.err != nil {
		return fmt.Errorf("submit of invalid recording: %w", r.err)
	}
	if r.submitted {
		return errors.New("recorder already submitted")
	}
	r.submitted = true
	for _, cmd := range r.cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cmd.run(); err != nil {
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
		if err := glError(cmd.name); err != nil {
			return err
		}
	}
	return d.wait(ctx)
}

func (d *Device) wait(ctx context.Context) error {
	const poll = uint64(time.Millisecond)
	sync := gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	defer gl.DeleteSync(sync)
	for {
		switch gl.ClientWaitSync(sync, gl.SYNC_FLUSH_COMMANDS_BIT, poll) {
		case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
			return nil
		case gl.WAIT_FAILED:
			return glError("waiting on fence")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func glBuffer(b compute.Buffer) (*buffer, error) {
	buf, ok := b.(*buffer)
	if !ok {
		return nil, fmt.Errorf("buffer of type %T not created by GL device", b)
	}
	return buf, nil
}

func glImage(im compute.Image) (*image, error) {
	img, ok := im.(*image)
	if !ok {
		return nil, fmt.Errorf("image of type %T not created by GL device", im)
	}
	return img, nil
}
