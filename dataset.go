package mnist

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Conventional file names of the four dataset members, as distributed.
const (
	TrainingImagesFile = "train-images-idx3-ubyte"
	TrainingLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile     = "t10k-images-idx3-ubyte"
	TestLabelsFile     = "t10k-labels-idx1-ubyte"
)

// ReadDataset loads the four conventional dataset files found under dir.
//
// The four decodes are independent and run concurrently; each owns its
// buffer and the results are joined before the Dataset is constructed.
// For any member whose plain file is absent, the .gz sibling is read
// instead — the canonical distribution ships all four files gzipped.
//
// Unless disabled with WithConsistencyCheck(false), ReadDataset verifies
// that image and label counts agree within each split and fails with
// ErrCountMismatch when they do not. Per-split caps are applied with
// WithTrainingLimit and WithTestLimit.
func ReadDataset[P Value, L Value](dir string, opts ...DatasetOption) (*Dataset[P, L], error) {
	cfg := datasetConfig{limits: defaultLimits(), checkCounts: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	var d Dataset[P, L]
	var g errgroup.Group
	g.Go(func() (err error) {
		d.TrainingImages, err = ReadImageFile[P](resolveDataFile(dir, TrainingImagesFile),
			WithLimit(cfg.trainingLimit), WithReadLimits(cfg.limits))
		return err
	})
	g.Go(func() (err error) {
		d.TrainingLabels, err = ReadLabelFile[L](resolveDataFile(dir, TrainingLabelsFile),
			WithLimit(cfg.trainingLimit), WithReadLimits(cfg.limits))
		return err
	})
	g.Go(func() (err error) {
		d.TestImages, err = ReadImageFile[P](resolveDataFile(dir, TestImagesFile),
			WithLimit(cfg.testLimit), WithReadLimits(cfg.limits))
		return err
	})
	g.Go(func() (err error) {
		d.TestLabels, err = ReadLabelFile[L](resolveDataFile(dir, TestLabelsFile),
			WithLimit(cfg.testLimit), WithReadLimits(cfg.limits))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.checkCounts {
		if err := validateCounts(&d); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// resolveDataFile returns the plain file path when it exists, otherwise
// the gzipped sibling.
func resolveDataFile(dir, name string) string {
	p := filepath.Join(dir, name)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return p + ".gz"
}

// Count reports the number of examples currently held by the split,
// measured on the image collection.
func (d *Dataset[P, L]) Count(s Split) int {
	if s == Training {
		return len(d.TrainingImages)
	}
	return len(d.TestImages)
}

// Resize truncates both members of the split to n examples, in lockstep.
// It only ever shrinks: when n is not strictly smaller than a member's
// current length that member is left unchanged. Any n is accepted,
// including zero and sizes beyond the current length.
func (d *Dataset[P, L]) Resize(s Split, n int) {
	if n < 0 {
		n = 0
	}
	switch s {
	case Training:
		if n < len(d.TrainingImages) {
			d.TrainingImages = d.TrainingImages[:n]
		}
		if n < len(d.TrainingLabels) {
			d.TrainingLabels = d.TrainingLabels[:n]
		}
	case Test:
		if n < len(d.TestImages) {
			d.TestImages = d.TestImages[:n]
		}
		if n < len(d.TestLabels) {
			d.TestLabels = d.TestLabels[:n]
		}
	}
}
