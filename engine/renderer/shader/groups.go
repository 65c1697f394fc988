package shader

// Bind group indices shared by every material shader. Groups 0 and 1 are declared
// identically in each shader so one frame group and one object group per node can be bound
// under any material's pipeline.
const (
	// GroupFrame holds the camera uniform at binding 0 and the sun at binding 1.
	GroupFrame = 0

	// GroupObject holds the node's ModelData at binding 0.
	GroupObject = 1

	// GroupMaterial holds material parameters, textures and the sampler.
	GroupMaterial = 2
)

// Bindings within the frame group.
const (
	BindingCamera = 0
	BindingLight  = 1
)

// BindingModelData is the ModelData binding within the object group.
const BindingModelData = 0
