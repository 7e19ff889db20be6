package mnist

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
)

// writeDatasetDir lays out a synthetic dataset directory with trainCount
// training examples and testCount test examples of 2x2 images. Pixel i of
// example n is 4n+i, label of example n is n.
func writeDatasetDir(t *testing.T, trainCount, testCount int) string {
	t.Helper()
	dir := t.TempDir()
	writeSplit(t, dir, TrainingImagesFile, TrainingLabelsFile, trainCount)
	writeSplit(t, dir, TestImagesFile, TestLabelsFile, testCount)
	return dir
}

func writeSplit(t *testing.T, dir, imgName, lblName string, count int) {
	t.Helper()
	body := make([]byte, count*4)
	labels := make([]byte, count)
	for n := 0; n < count; n++ {
		for i := 0; i < 4; i++ {
			body[n*4+i] = byte(n*4 + i)
		}
		labels[n] = byte(n)
	}
	writeFile(t, filepath.Join(dir, imgName), imageFileBytes(MagicImages, uint32(count), 2, 2, body))
	writeFile(t, filepath.Join(dir, lblName), labelFileBytes(MagicLabels, uint32(count), labels))
}

func TestReadDataset(t *testing.T) {
	dir := writeDatasetDir(t, 3, 2)
	ds, err := ReadDataset[uint8, uint8](dir)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if ds.Count(Training) != 3 || ds.Count(Test) != 2 {
		t.Fatalf("expected 3/2 examples, got %d/%d", ds.Count(Training), ds.Count(Test))
	}
	if len(ds.TrainingImages) != len(ds.TrainingLabels) || len(ds.TestImages) != len(ds.TestLabels) {
		t.Fatal("split lengths disagree")
	}
	if want := (Image[uint8]{4, 5, 6, 7}); !reflect.DeepEqual(ds.TrainingImages[1], want) {
		t.Fatalf("training image 1: want %v got %v", want, ds.TrainingImages[1])
	}
	if ds.TestLabels[1] != 1 {
		t.Fatalf("test label 1: want 1 got %d", ds.TestLabels[1])
	}
}

func TestReadDatasetGzFallback(t *testing.T) {
	// Only gzipped files present, under the canonical .gz names.
	plainDir := writeDatasetDir(t, 2, 1)
	dir := t.TempDir()
	for _, name := range []string{TrainingImagesFile, TrainingLabelsFile, TestImagesFile, TestLabelsFile} {
		data, err := readDataFile(filepath.Join(plainDir, name), 1<<20)
		if err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, name+".gz"), gzipBytes(t, data))
	}

	ds, err := ReadDataset[uint8, uint8](dir)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if ds.Count(Training) != 2 || ds.Count(Test) != 1 {
		t.Fatalf("expected 2/1 examples, got %d/%d", ds.Count(Training), ds.Count(Test))
	}
}

func TestReadDatasetLimits(t *testing.T) {
	dir := writeDatasetDir(t, 5, 4)
	ds, err := ReadDataset[uint8, uint8](dir, WithTrainingLimit(2), WithTestLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	if ds.Count(Training) != 2 || ds.Count(Test) != 1 {
		t.Fatalf("expected 2/1 examples, got %d/%d", ds.Count(Training), ds.Count(Test))
	}
	if len(ds.TrainingLabels) != 2 || len(ds.TestLabels) != 1 {
		t.Fatal("labels not clamped in step with images")
	}
}

func TestReadDatasetCountMismatch(t *testing.T) {
	dir := writeDatasetDir(t, 3, 2)
	// Shrink the training label file to two labels.
	writeFile(t, filepath.Join(dir, TrainingLabelsFile), labelFileBytes(MagicLabels, 2, []byte{0, 1}))

	_, err := ReadDataset[uint8, uint8](dir)
	if !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("expected ErrCountMismatch, got %v", err)
	}

	ds, err := ReadDataset[uint8, uint8](dir, WithConsistencyCheck(false))
	if err != nil {
		t.Fatalf("check disabled: %v", err)
	}
	if len(ds.TrainingImages) != 3 || len(ds.TrainingLabels) != 2 {
		t.Fatalf("expected permissive 3/2, got %d/%d", len(ds.TrainingImages), len(ds.TrainingLabels))
	}
}

func TestReadDatasetMissingFile(t *testing.T) {
	_, err := ReadDataset[uint8, uint8](t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func sampleDataset() *Dataset[uint8, uint8] {
	return &Dataset[uint8, uint8]{
		TrainingImages: []Image[uint8]{{1}, {2}, {3}},
		TrainingLabels: []uint8{1, 2, 3},
		TestImages:     []Image[uint8]{{4}, {5}},
		TestLabels:     []uint8{4, 5},
	}
}

func TestResize(t *testing.T) {
	// No-grow: equal and larger sizes leave the dataset unchanged.
	ds := sampleDataset()
	ds.Resize(Training, 3)
	ds.Resize(Training, 10)
	if !reflect.DeepEqual(ds, sampleDataset()) {
		t.Fatalf("expected unchanged dataset, got %#v", ds)
	}

	ds.Resize(Training, 1)
	if len(ds.TrainingImages) != 1 || len(ds.TrainingLabels) != 1 {
		t.Fatalf("expected lockstep shrink to 1, got %d/%d", len(ds.TrainingImages), len(ds.TrainingLabels))
	}
	if ds.Count(Test) != 2 {
		t.Fatal("test split must be untouched")
	}

	// Two decreasing resizes equal one resize to the smaller size.
	a, b := sampleDataset(), sampleDataset()
	a.Resize(Test, 2)
	a.Resize(Test, 1)
	b.Resize(Test, 1)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("resize not idempotent: %#v vs %#v", a, b)
	}

	ds = sampleDataset()
	ds.Resize(Test, 0)
	if ds.Count(Test) != 0 || len(ds.TestLabels) != 0 {
		t.Fatal("expected empty test split")
	}
	ds.Resize(Test, -1)
	if ds.Count(Test) != 0 {
		t.Fatal("negative size must clamp to zero")
	}
}

func TestResizeMismatchedSplit(t *testing.T) {
	// With the consistency check disabled a split can hold unequal
	// lengths; Resize must still never grow either member.
	ds := &Dataset[uint8, uint8]{
		TrainingImages: []Image[uint8]{{1}, {2}, {3}},
		TrainingLabels: []uint8{1, 2},
	}
	ds.Resize(Training, 2)
	if len(ds.TrainingImages) != 2 || len(ds.TrainingLabels) != 2 {
		t.Fatalf("got %d/%d", len(ds.TrainingImages), len(ds.TrainingLabels))
	}
}

func TestSplitString(t *testing.T) {
	if Training.String() != "training" || Test.String() != "test" {
		t.Fatal("unexpected split names")
	}
	if Split(9).String() != "unknown" {
		t.Fatal("expected unknown")
	}
}
