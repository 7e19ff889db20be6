package mnist

const (
	// MagicImages is the first header word of an image file.
	MagicImages uint32 = 0x00000803
	// MagicLabels is the first header word of a label file.
	MagicLabels uint32 = 0x00000801
)

const (
	imageHeaderSize = 16
	labelHeaderSize = 8
)

// Value is the set of element types a decoded pixel or label may take.
// The wire format stores unsigned bytes; wider types receive the same
// numeric value.
type Value interface {
	~uint8 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// Image is one flattened image: rows*cols pixels in row-major order.
type Image[T Value] []T

// Split selects one of the two dataset partitions.
type Split int

const (
	Training Split = iota
	Test
)

func (s Split) String() string {
	switch s {
	case Training:
		return "training"
	case Test:
		return "test"
	}
	return "unknown"
}

// Dataset holds the decoded training and test splits. P is the pixel
// element type, L the label element type.
//
// After ReadDataset with the consistency check enabled (the default),
// each split's image and label collections have equal length, and Resize
// preserves that.
type Dataset[P Value, L Value] struct {
	TrainingImages []Image[P]
	TrainingLabels []L
	TestImages     []Image[P]
	TestLabels     []L
}
