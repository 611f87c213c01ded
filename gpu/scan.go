package gpu

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
)

// MaxScanSize is the largest input one scan kernel accepts. The kernel
// holds two n-element buffers in workgroup shared memory, so n is bounded
// by the workgroup storage limit; 1024 matches the CPU tree scan's
// compute-group cap and fits the 16KB minimum WebGPU guarantees.
const MaxScanSize = 1024

// workgroupThreads is the thread count per workgroup; each thread owns
// ceil(n/256) elements per round.
const workgroupThreads = 256

// ScanKernel holds the GPU resources for a fixed-size inclusive sum scan.
// The shader is the same double-buffered step-doubling construction as the
// CPU tree strategy: two shared-memory regions selected by ping/pong
// offsets, `workgroupBarrier()` after every round so no thread reads a
// peer's current-round write.
type ScanKernel struct {
	N int

	pipeline  *wgpu.ComputePipeline
	bindGroup *wgpu.BindGroup

	InputBuffer  *wgpu.Buffer
	OutputBuffer *wgpu.Buffer
}

// NewScanKernel compiles and binds a scan kernel for inputs of exactly n
// elements.
func NewScanKernel(n int) (*ScanKernel, error) {
	if n < 1 {
		return nil, fmt.Errorf("scan kernel needs at least 1 element")
	}
	if n > MaxScanSize {
		return nil, fmt.Errorf("input length %d exceeds one workgroup (max %d)", n, MaxScanSize)
	}

	c, err := GetContext()
	if err != nil {
		return nil, err
	}

	k := &ScanKernel{N: n}
	if err := k.allocateBuffers(c); err != nil {
		return nil, err
	}
	if err := k.compile(c); err != nil {
		return nil, err
	}
	if err := k.createBindGroup(c); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *ScanKernel) allocateBuffers(c *Context) error {
	var err error

	k.InputBuffer, err = c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Scan_In",
		Size:  uint64(k.N * 4),
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return err
	}

	k.OutputBuffer, err = c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Scan_Out",
		Size:  uint64(k.N * 4),
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})
	return err
}

func (k *ScanKernel) generateShader() string {
	elemsPerThread := (k.N + workgroupThreads - 1) / workgroupThreads

	// temp is split in two halves; pin/pout select which half a round
	// reads and which it writes, swapping after the barrier.
	return fmt.Sprintf(`
		@group(0) @binding(0) var<storage, read> input : array<f32>;
		@group(0) @binding(1) var<storage, read_write> output : array<f32>;

		const N: u32 = %du;
		const ELEMS_PER_THREAD: u32 = %du;

		var<workgroup> temp: array<f32, %d>;

		@compute @workgroup_size(%d)
		fn main(@builtin(local_invocation_id) local_id: vec3<u32>) {
			let tid = local_id.x;
			var pin: u32 = 0u;
			var pout: u32 = N;

			for (var i: u32 = 0u; i < ELEMS_PER_THREAD; i++) {
				let idx = tid + i * %du;
				if (idx < N) {
					temp[pin + idx] = input[idx];
				}
			}
			workgroupBarrier();

			for (var offset: u32 = 1u; offset < N; offset = offset << 1u) {
				for (var i: u32 = 0u; i < ELEMS_PER_THREAD; i++) {
					let idx = tid + i * %du;
					if (idx < N) {
						if (idx >= offset) {
							temp[pout + idx] = temp[pin + idx - offset] + temp[pin + idx];
						} else {
							temp[pout + idx] = temp[pin + idx];
						}
					}
				}
				workgroupBarrier();
				let swap = pin;
				pin = pout;
				pout = swap;
			}

			for (var i: u32 = 0u; i < ELEMS_PER_THREAD; i++) {
				let idx = tid + i * %du;
				if (idx < N) {
					output[idx] = temp[pin + idx];
				}
			}
		}
	`, k.N, elemsPerThread, 2*k.N, workgroupThreads,
		workgroupThreads, workgroupThreads, workgroupThreads)
}

func (k *ScanKernel) compile(c *Context) error {
	module, err := c.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Scan_Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: k.generateShader()},
	})
	if err != nil {
		return err
	}

	k.pipeline, err = c.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:   "Scan_Pipe",
		Compute: wgpu.ProgrammableStageDescriptor{Module: module, EntryPoint: "main"},
	})
	return err
}

func (k *ScanKernel) createBindGroup(c *Context) error {
	var err error
	entries := []wgpu.BindGroupEntry{
		{Binding: 0, Buffer: k.InputBuffer, Size: k.InputBuffer.GetSize()},
		{Binding: 1, Buffer: k.OutputBuffer, Size: k.OutputBuffer.GetSize()},
	}
	k.bindGroup, err = c.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Scan_Bind",
		Layout:  k.pipeline.GetBindGroupLayout(0),
		Entries: entries,
	})
	return err
}

// Scan uploads input, runs one workgroup through the double-buffered
// rounds, and reads back the inclusive sum scan.
func (k *ScanKernel) Scan(input []float32) ([]float32, error) {
	if len(input) != k.N {
		return nil, fmt.Errorf("kernel compiled for %d elements, got %d", k.N, len(input))
	}

	c, err := GetContext()
	if err != nil {
		return nil, err
	}

	c.Queue.WriteBuffer(k.InputBuffer, 0, wgpu.ToBytes(input))

	encoder, err := c.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create command encoder: %v", err)
	}
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(k.pipeline)
	pass.SetBindGroup(0, k.bindGroup, nil)
	// A single workgroup: this construction only holds within one
	// barrier-synchronizable group.
	pass.DispatchWorkgroups(1, 1, 1)
	pass.End()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to finish command: %v", err)
	}
	c.Queue.Submit(cmd)

	return readBuffer(c, k.OutputBuffer, k.N)
}

// Release frees the kernel's GPU resources.
func (k *ScanKernel) Release() {
	if k.InputBuffer != nil {
		k.InputBuffer.Destroy()
	}
	if k.OutputBuffer != nil {
		k.OutputBuffer.Destroy()
	}
}
