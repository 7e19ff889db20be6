package mnist

type readConfig struct {
	limits Limits
	limit  uint32
}

type ReadOption func(*readConfig)

// WithLimit caps the number of decoded elements. Zero means unlimited.
// A limit at or above the file's declared count has no effect.
func WithLimit(n uint32) ReadOption {
	return func(c *readConfig) { c.limit = n }
}

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type datasetConfig struct {
	limits        Limits
	trainingLimit uint32
	testLimit     uint32
	checkCounts   bool
}

type DatasetOption func(*datasetConfig)

// WithTrainingLimit caps the training split to n examples. Zero means unlimited.
func WithTrainingLimit(n uint32) DatasetOption {
	return func(c *datasetConfig) { c.trainingLimit = n }
}

// WithTestLimit caps the test split to n examples. Zero means unlimited.
func WithTestLimit(n uint32) DatasetOption {
	return func(c *datasetConfig) { c.testLimit = n }
}

// WithConsistencyCheck controls whether ReadDataset verifies that image and
// label counts agree within each split. Enabled by default; disabling it
// restores the historical permissive behavior, at the cost of possibly
// holding splits of unequal length.
func WithConsistencyCheck(v bool) DatasetOption {
	return func(c *datasetConfig) { c.checkCounts = v }
}

func WithDatasetLimits(l Limits) DatasetOption {
	return func(c *datasetConfig) { c.limits = l }
}
