package quat

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"k8s.io/klog/v2"
)

var (
	// ErrNoRotationData is returned when a glTF document has neither rotated nodes nor rotation animation channels.
	ErrNoRotationData = errors.New("no rotation data in glTF document")
	// ErrUnsupportedAccessor is returned when a rotation sampler's accessor holds data that can't be read as rotations.
	ErrUnsupportedAccessor = errors.New("unsupported accessor data")
	// ErrIndexOutOfRange is returned when a glTF document refers to a node, sampler, or accessor that doesn't exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning the rotations it holds.
// External buffers are resolved relative to the file.
func LoadGLTFFile(path string) (*Library, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return LibraryFromDocument(doc)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, returning the rotations it holds.
// Buffers must be embedded (a .glb, or data URIs).
func LoadGLTFData(data []byte) (*Library, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glTF data: %w", err)
	}

	return LibraryFromDocument(doc)

}

func nodeName(doc *gltf.Document, index int) string {
	if name := doc.Nodes[index].Name; name != "" {
		return name
	}
	return fmt.Sprintf("node%d", index)
}

// LibraryFromDocument collects the node rotations and rotation animation channels of an already-decoded glTF document.
// glTF stores rotations as (x, y, z, w); they're reordered into Quaternions here.
func LibraryFromDocument(doc *gltf.Document) (*Library, error) {

	library := NewLibrary()

	for i, node := range doc.Nodes {
		r := node.Rotation
		library.Nodes[nodeName(doc, i)] = NewQuaternion(float32(r[3]), float32(r[0]), float32(r[1]), float32(r[2]))
	}

	for animIndex, gltfAnim := range doc.Animations {

		animName := gltfAnim.Name
		if animName == "" {
			animName = fmt.Sprintf("animation%d", animIndex)
		}

		for _, channel := range gltfAnim.Channels {

			if channel.Target.Path != gltf.TRSRotation {
				klog.V(4).Infof("animation %s: skipping %s channel", animName, channel.Target.Path)
				continue
			}

			if channel.Target.Node == nil {
				klog.V(4).Infof("animation %s: skipping rotation channel with no target node", animName)
				continue
			}

			if channel.Sampler < 0 || channel.Sampler >= len(gltfAnim.Samplers) {
				return nil, fmt.Errorf("animation %s: sampler %d: %w", animName, channel.Sampler, ErrIndexOutOfRange)
			}

			if node := *channel.Target.Node; node < 0 || node >= len(doc.Nodes) {
				return nil, fmt.Errorf("animation %s: target node %d: %w", animName, node, ErrIndexOutOfRange)
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			track, err := readRotationSampler(doc, sampler)
			if err != nil {
				return nil, fmt.Errorf("animation %s: %w", animName, err)
			}

			track.Name = animName + "/" + nodeName(doc, *channel.Target.Node)
			library.AddTrack(track)

		}

	}

	if len(library.Nodes) == 0 && len(library.Tracks) == 0 {
		return nil, ErrNoRotationData
	}

	return library, nil

}

func readRotationSampler(doc *gltf.Document, sampler *gltf.AnimationSampler) (*Track, error) {

	for _, index := range []int{sampler.Input, sampler.Output} {
		if index < 0 || index >= len(doc.Accessors) {
			return nil, fmt.Errorf("sampler accessor %d: %w", index, ErrIndexOutOfRange)
		}
	}

	id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)
	if err != nil {
		return nil, fmt.Errorf("reading sampler input: %w", err)
	}

	inputData, ok := id.([]float32)
	if !ok {
		return nil, fmt.Errorf("sampler input is %T: %w", id, ErrUnsupportedAccessor)
	}

	od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)
	if err != nil {
		return nil, fmt.Errorf("reading sampler output: %w", err)
	}

	outputData, err := rotationsFromAccessorData(od)
	if err != nil {
		return nil, err
	}

	track := NewTrack("")

	// Cubic spline samplers store an in-tangent, a value, and an out-tangent per keyframe; only the values are kept,
	// and they're slerped between.
	stride, offset := 1, 0
	switch sampler.Interpolation {
	case gltf.InterpolationStep:
		track.Interpolation = InterpolationStep
	case gltf.InterpolationCubicSpline:
		klog.V(4).Infof("cubic spline rotation sampler will be slerped")
		stride, offset = 3, 1
	}

	if len(outputData) < len(inputData)*stride {
		return nil, fmt.Errorf("sampler has %d times but only %d rotations: %w", len(inputData), len(outputData), ErrUnsupportedAccessor)
	}

	for i, t := range inputData {
		track.AddKeyframe(t, outputData[i*stride+offset])
	}

	return track, nil

}

// rotationsFromAccessorData converts the output of a rotation sampler into Quaternions. Besides floats, glTF allows
// normalized signed bytes and shorts for rotations.
func rotationsFromAccessorData(data any) ([]Quaternion, error) {

	var out []Quaternion

	switch values := data.(type) {

	case [][4]float32:
		out = make([]Quaternion, len(values))
		for i, p := range values {
			out[i] = NewQuaternion(p[3], p[0], p[1], p[2])
		}

	case [][4]int8:
		out = make([]Quaternion, len(values))
		for i, p := range values {
			out[i] = NewQuaternion(unpackNormalized(float32(p[3]), 127), unpackNormalized(float32(p[0]), 127), unpackNormalized(float32(p[1]), 127), unpackNormalized(float32(p[2]), 127))
		}

	case [][4]int16:
		out = make([]Quaternion, len(values))
		for i, p := range values {
			out[i] = NewQuaternion(unpackNormalized(float32(p[3]), 32767), unpackNormalized(float32(p[0]), 32767), unpackNormalized(float32(p[1]), 32767), unpackNormalized(float32(p[2]), 32767))
		}

	default:
		return nil, fmt.Errorf("rotation output is %T: %w", data, ErrUnsupportedAccessor)

	}

	return out, nil

}

func unpackNormalized(value, max float32) float32 {
	if v := value / max; v > -1 {
		return v
	}
	return -1
}
