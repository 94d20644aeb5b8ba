package blockpool

// Ptr is a handle to a live allocation: the absolute byte offset of its
// first unit within the Context's single host buffer. Per the design
// notes favouring an owned byte region with exposed indices over raw
// pointers, Ptr is never cast to or from unsafe.Pointer.
type Ptr int64

// NullPtr is returned alongside a non-nil error from Alloc; it is never
// a valid live Ptr because it is negative, while every payload offset is
// a non-negative index into the host buffer.
const NullPtr Ptr = -1
