package bind_group_provider

// BufferWrite describes one queued write into the buffer at a provider's binding.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
