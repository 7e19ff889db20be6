// Package mnist decodes the IDX image/label container format used by the
// MNIST handwritten digit dataset and its drop-in relatives (Fashion-MNIST,
// KMNIST, EMNIST).
//
// # File Format Overview
//
// An image file consists of:
//   - A 16-byte header of four big-endian 32-bit words: magic (0x00000803),
//     image count, row count, column count
//   - count*rows*cols unsigned bytes, one pixel each, row-major, images
//     concatenated with no padding
//
// A label file consists of:
//   - An 8-byte header of two big-endian 32-bit words: magic (0x00000801)
//     and label count
//   - count unsigned bytes, one label each
//
// The headers are big-endian on every host; this package always performs an
// explicit big-endian load rather than a host-order read plus byte swap.
//
// # Basic Usage
//
// To load the four conventional files of a dataset directory:
//
//	ds, err := mnist.ReadDataset[uint8, uint8]("data/mnist")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(ds.TrainingImages), len(ds.TestImages))
//
// Pixel and label element types are type parameters, so the raw bytes can
// be widened on the way in:
//
//	imgs, err := mnist.ReadImageFile[float32]("train-images-idx3-ubyte")
//
// Files compressed with gzip, Zstandard or LZ4 are recognized by their
// stream magic and decompressed transparently; Brotli is recognized by a
// .br extension. The canonical MNIST distribution ships gzipped, and
// ReadDataset falls back to the .gz sibling of any missing plain file.
//
// # Security Considerations
//
// Header fields are attacker-controlled sizes. Decoding enforces
// configurable [Limits] on element counts, image dimensions and
// decompressed size, so a hostile file cannot drive oversized allocations
// or decompression bombs.
package mnist
