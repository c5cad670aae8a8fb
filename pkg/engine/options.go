package engine

type Options struct {
	// MaxDepth is the ply at which nodes become leaves.
	MaxDepth int
	// Capacity is the initial size of the node arena.
	Capacity int
}

func NewOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Capacity: 1 << 16,
	}
}
