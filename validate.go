package mnist

import "fmt"

func validateImageHeader(h imageHeader, size uint64, limits Limits) error {
	if h.Magic != MagicImages {
		return fmt.Errorf("%w: 0x%08x is not an image file magic", ErrInvalidMagic, h.Magic)
	}
	if h.Count > limits.MaxImageCount {
		return fmt.Errorf("%w: image count %d", ErrLimitExceeded, h.Count)
	}
	if h.Rows > limits.MaxRows {
		return fmt.Errorf("%w: row count %d", ErrLimitExceeded, h.Rows)
	}
	if h.Cols > limits.MaxCols {
		return fmt.Errorf("%w: column count %d", ErrLimitExceeded, h.Cols)
	}
	need := uint64(h.Count)*uint64(h.Rows)*uint64(h.Cols) + imageHeaderSize
	if size < need {
		return fmt.Errorf("%w: %d bytes declared, %d present", ErrTruncated, need, size)
	}
	return nil
}

func validateLabelHeader(h labelHeader, size uint64, limits Limits) error {
	if h.Magic != MagicLabels {
		return fmt.Errorf("%w: 0x%08x is not a label file magic", ErrInvalidMagic, h.Magic)
	}
	if h.Count > limits.MaxLabelCount {
		return fmt.Errorf("%w: label count %d", ErrLimitExceeded, h.Count)
	}
	need := uint64(h.Count) + labelHeaderSize
	if size < need {
		return fmt.Errorf("%w: %d bytes declared, %d present", ErrTruncated, need, size)
	}
	return nil
}

// validateCounts checks the per-split image/label length invariant after
// assembly. The wire format itself cannot express the relation, so a pair
// of individually valid files can still disagree.
func validateCounts[P Value, L Value](d *Dataset[P, L]) error {
	if len(d.TrainingImages) != len(d.TrainingLabels) {
		return fmt.Errorf("%w: training split has %d images and %d labels",
			ErrCountMismatch, len(d.TrainingImages), len(d.TrainingLabels))
	}
	if len(d.TestImages) != len(d.TestLabels) {
		return fmt.Errorf("%w: test split has %d images and %d labels",
			ErrCountMismatch, len(d.TestImages), len(d.TestLabels))
	}
	return nil
}
