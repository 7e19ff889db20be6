package mnist

type Limits struct {
	MaxImageCount       uint32
	MaxLabelCount       uint32
	MaxRows             uint32
	MaxCols             uint32
	MaxUncompressedSize uint64 // bytes after decompressing a compressed data file
}

func defaultLimits() Limits {
	return Limits{
		MaxImageCount:       1 << 24,
		MaxLabelCount:       1 << 24,
		MaxRows:             1 << 12,
		MaxCols:             1 << 12,
		MaxUncompressedSize: 1 << 30, // 1 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxImageCount == 0 {
		l.MaxImageCount = d.MaxImageCount
	}
	if l.MaxLabelCount == 0 {
		l.MaxLabelCount = d.MaxLabelCount
	}
	if l.MaxRows == 0 {
		l.MaxRows = d.MaxRows
	}
	if l.MaxCols == 0 {
		l.MaxCols = d.MaxCols
	}
	if l.MaxUncompressedSize == 0 {
		l.MaxUncompressedSize = d.MaxUncompressedSize
	}
	return l
}
