package sobel

// KernelSize is the side length of every convolution kernel.
const KernelSize = 3

// kernelHalf is the neighborhood radius of a KernelSize kernel.
const kernelHalf = KernelSize / 2

// Kernel is a 3x3 matrix of convolution weights flattened row-major.
// Kernel is an array, so it is copied on assignment and every driver works
// on its own immutable copy.
type Kernel [KernelSize * KernelSize]float32

// At returns the weight at horizontal offset kx and vertical offset ky,
// both in [-1, 1] relative to the kernel center.
func (k Kernel) At(kx, ky int) float32 {
	return k[(ky+kernelHalf)*KernelSize+(kx+kernelHalf)]
}

var (
	sobelX = Kernel{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}

	sobelY = Kernel{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// SobelX returns the horizontal-gradient Sobel kernel.
func SobelX() Kernel { return sobelX }

// SobelY returns the vertical-gradient Sobel kernel.
func SobelY() Kernel { return sobelY }
