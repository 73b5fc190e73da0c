// Package cpudev implements compute.Device on the host. Kernels are Go
// functions run over every work group of a dispatch by a pool of goroutines.
// Commands are validated for usage and synchronization hazards as they are
// recorded, so a command stream accepted by this device is correctly
// ordered for a GPU as well.
package cpudev

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/soypat/isoterrain/compute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Invocation runs a kernel for one global invocation ID. IDs outside the
// kernel's domain are passed as well and must be ignored.
type Invocation func(gid [3]int)

// KernelFunc prepares a kernel for one dispatch over the resources in b.
type KernelFunc func(b *Bound) (Invocation, error)

// DrawFunc receives the vertices of an indirect draw: the first
// vertexCount records of the vertex buffer, 4 words each.
type DrawFunc func(vertexWords []uint32, vertexCount, instanceCount uint32)

// Device is a host compute.Device.
type Device struct {
	log     *zap.Logger
	workers int
	kernels map[string]KernelFunc
	draw    DrawFunc

	mu     sync.Mutex
	closed bool
}

var _ compute.Device = (*Device)(nil)

var errClosed = errors.New("device closed")

// Option configures a Device.
type Option func(*Device)

// WithWorkers sets the number of goroutines executing work groups.
func WithWorkers(n int) Option {
	return func(d *Device) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithKernel registers the Go implementation of the named kernel.
func WithKernel(name string, fn KernelFunc) Option {
	return func(d *Device) { d.kernels[name] = fn }
}

// WithDrawFunc sets the hook invoked by indirect draws.
func WithDrawFunc(fn DrawFunc) Option {
	return func(d *Device) { d.draw = fn }
}

// WithLogger sets the device logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Device) {
		if log != nil {
			d.log = log
		}
	}
}

// New returns a host device.
func New(opts ...Option) *Device {
	d := &Device{
		log:     zap.NewNop(),
		workers: runtime.NumCPU(),
		kernels: make(map[string]KernelFunc),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Workers returns the size of the worker pool.
func (d *Device) Workers() int { return d.workers }

type buffer struct {
	name  string
	usage compute.Usage
	words []uint32
}

func (b *buffer) Name() string         { return b.name }
func (b *buffer) Usage() compute.Usage { return b.usage }
func (b *buffer) Len() int             { return len(b.words) }

type image struct {
	name   string
	usage  compute.Usage
	extent [3]int
	texels []float32
}

func (im *image) Name() string         { return im.name }
func (im *image) Usage() compute.Usage { return im.usage }
func (im *image) Extent() [3]int       { return im.extent }

type pipeline struct {
	kernel compute.Kernel
	fn     KernelFunc
}

func (p *pipeline) Kernel() compute.Kernel { return p.kernel }

func (d *Device) checkOpen() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	return nil
}

// NewBuffer allocates a zeroed buffer of words 32-bit words.
func (d *Device) NewBuffer(name string, words int, usage compute.Usage) (compute.Buffer, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	if words <= 0 {
		return nil, fmt.Errorf("buffer %s: invalid size %d", name, words)
	}
	d.log.Debug("new buffer", zap.String("name", name), zap.Int("words", words))
	return &buffer{name: name, usage: usage, words: make([]uint32, words)}, nil
}

// NewImage3D allocates a zeroed single channel float image.
func (d *Device) NewImage3D(name string, extent [3]int, usage compute.Usage) (compute.Image, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	n := 1
	for _, e := range extent {
		if e <= 0 {
			return nil, fmt.Errorf("image %s: invalid extent %v", name, extent)
		}
		n *= e
	}
	d.log.Debug("new image", zap.String("name", name), zap.Ints("extent", extent[:]))
	return &image{name: name, usage: usage, extent: extent, texels: make([]float32, n)}, nil
}

// NewPipeline looks up the Go implementation of k.
func (d *Device) NewPipeline(k compute.Kernel) (compute.Pipeline, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	fn, ok := d.kernels[k.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", compute.ErrUnknownKernel, k.Name)
	}
	return &pipeline{kernel: k, fn: fn}, nil
}

// ReadBuffer copies the start of b into dst.
func (d *Device) ReadBuffer(b compute.Buffer, dst []uint32) error {
	buf, err := d.hostBuffer(b)
	if err != nil {
		return err
	}
	if len(dst) > len(buf.words) {
		return fmt.Errorf("read of %d words from %d word buffer %s", len(dst), len(buf.words), buf.name)
	}
	for i := range dst {
		dst[i] = atomic.LoadUint32(&buf.words[i])
	}
	return nil
}

// Close releases the device. Resources must not be used afterwards.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	d.closed = true
	return nil
}

func (d *Device) hostBuffer(b compute.Buffer) (*buffer, error) {
	buf, ok := b.(*buffer)
	if !ok {
		return nil, fmt.Errorf("buffer of type %T not created by host device", b)
	}
	return buf, nil
}

func (d *Device) hostImage(im compute.Image) (*image, error) {
	img, ok := im.(*image)
	if !ok {
		return nil, fmt.Errorf("image of type %T not created by host device", im)
	}
	return img, nil
}

// runGroups executes inv over every invocation of groups work groups of
// size local. Workers pull group indices from a shared counter and stop at
// the first canceled group.
func (d *Device) runGroups(ctx context.Context, inv Invocation, groups, local [3]uint32) error {
	total := uint64(groups[0]) * uint64(groups[1]) * uint64(groups[2])
	if total == 0 {
		return nil
	}
	workers := d.workers
	if uint64(workers) > total {
		workers = int(total)
	}
	var next atomic.Uint64
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= total {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				gx := uint32(i % uint64(groups[0]))
				gy := uint32(i / uint64(groups[0]) % uint64(groups[1]))
				gz := uint32(i / (uint64(groups[0]) * uint64(groups[1])))
				runGroup(inv, [3]uint32{gx, gy, gz}, local)
			}
		})
	}
	return eg.Wait()
}

func runGroup(inv Invocation, group, local [3]uint32) {
	base := [3]int{int(group[0] * local[0]), int(group[1] * local[1]), int(group[2] * local[2])}
	for z := 0; z < int(local[2]); z++ {
		for y := 0; y < int(local[1]); y++ {
			for x := 0; x < int(local[0]); x++ {
				inv([3]int{base[0] + x, base[1] + y, base[2] + z})
			}
		}
	}
}
