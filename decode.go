package mnist

// DecodeImages decodes an IDX image buffer into one Image per example.
//
// The decoding process:
//  1. Parses the 16-byte header: magic, count, rows, cols
//  2. Validates the magic number and the header fields against limits
//  3. Validates that the buffer holds count*rows*cols body bytes
//  4. Clamps count to WithLimit, if one was given
//  5. Materializes count images of rows*cols elements each
//
// Each pixel byte is converted to the element type T. A file declaring
// zero images decodes to an empty, non-nil slice. On any failure the
// returned slice is nil and the error wraps ErrInvalidHeader,
// ErrInvalidMagic, ErrLimitExceeded or ErrTruncated.
func DecodeImages[T Value](data []byte, opts ...ReadOption) ([]Image[T], error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readImageHeader(data)
	if err != nil {
		return nil, err
	}
	if err := validateImageHeader(h, uint64(len(data)), cfg.limits); err != nil {
		return nil, err
	}

	count := h.Count
	if cfg.limit > 0 && cfg.limit < count {
		count = cfg.limit
	}
	pixels := int(h.Rows) * int(h.Cols)
	body := data[imageHeaderSize:]
	images := make([]Image[T], count)
	for i := range images {
		img := make(Image[T], pixels)
		for j, p := range body[i*pixels : (i+1)*pixels] {
			img[j] = T(p)
		}
		images[i] = img
	}
	return images, nil
}

// DecodeLabels decodes an IDX label buffer into one scalar per example.
// Same contract as DecodeImages: the header carries only magic (0x801)
// and count, the body is one byte per label starting at offset 8.
func DecodeLabels[T Value](data []byte, opts ...ReadOption) ([]T, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readLabelHeader(data)
	if err != nil {
		return nil, err
	}
	if err := validateLabelHeader(h, uint64(len(data)), cfg.limits); err != nil {
		return nil, err
	}

	count := h.Count
	if cfg.limit > 0 && cfg.limit < count {
		count = cfg.limit
	}
	labels := make([]T, count)
	for i, b := range data[labelHeaderSize : labelHeaderSize+int(count)] {
		labels[i] = T(b)
	}
	return labels, nil
}

// ReadImageFile reads and decodes an IDX image file from disk. Compressed
// files are decompressed transparently, see readDataFile.
func ReadImageFile[T Value](path string, opts ...ReadOption) ([]Image[T], error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	data, err := readDataFile(path, cfg.limits.MaxUncompressedSize)
	if err != nil {
		return nil, err
	}
	return DecodeImages[T](data, opts...)
}

// ReadLabelFile reads and decodes an IDX label file from disk.
func ReadLabelFile[T Value](path string, opts ...ReadOption) ([]T, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	data, err := readDataFile(path, cfg.limits.MaxUncompressedSize)
	if err != nil {
		return nil, err
	}
	return DecodeLabels[T](data, opts...)
}
