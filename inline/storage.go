package inline

// Storage is the set of array types a Vec may use as inline storage.
// The array length is the capacity of the container.
type Storage[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[10]T | ~[12]T | ~[16]T | ~[20]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T |
		~[96]T | ~[128]T | ~[256]T | ~[512]T | ~[1024]T
}

// Commonly used capacities.
type (
	Vec4[T any]  = Vec[T, [4]T]
	Vec8[T any]  = Vec[T, [8]T]
	Vec16[T any] = Vec[T, [16]T]
	Vec32[T any] = Vec[T, [32]T]
	Vec64[T any] = Vec[T, [64]T]
)
