// Package tiff reads baseline TIFF files straight from a memory mapping,
// without decoding the whole image up front. Equirectangular maps used as
// textures can run to hundreds of megapixels; this reader touches only the
// strips or tiles a render actually samples.
package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Tag numbers per the TIFF 6.0 baseline.
// https://www.loc.gov/preservation/digital/formats/content/tiff_tags.shtml
const (
	tagImageWidth                = 256
	tagImageLength               = 257
	tagBitsPerSample             = 258
	tagCompression               = 259
	tagPhotometricInterpretation = 262
	tagStripOffsets              = 273
	tagSamplesPerPixel           = 277
	tagRowsPerStrip              = 278
	tagStripByteCounts           = 279
	tagPlanarConfiguration       = 284
	tagTileWidth                 = 322
	tagTileLength                = 323
	tagTileOffsets               = 324
	tagTileByteCounts            = 325
)

// Compression schemes this reader understands.
const (
	compressionNone    = 1
	compressionDeflate = 8
)

// Photometric interpretations this reader understands.
const (
	photometricBlackIsZero = 1
	photometricRGB         = 2
)

// ErrInvalidHeader marks a file that is not a TIFF at all, as opposed to a
// TIFF this reader cannot handle. Callers use errors.Is to decide whether to
// try another codec quietly.
var ErrInvalidHeader = errors.New("invalid TIFF header")

type header struct {
	byteOrder       binary.ByteOrder
	width, height   int
	samplesPerPixel int
	bitsPerSample   []int
	photometric     int
	compression     int
	planarConfig    int

	// Strip layout
	rowsPerStrip    int
	stripOffsets    []int
	stripByteCounts []int

	// Tile layout
	tileWidth      int
	tileHeight     int
	tileOffsets    []int
	tileByteCounts []int
}

func (h header) tiled() bool {
	return len(h.tileOffsets) > 0
}

func parseHeader(r io.ReaderAt) (header, error) {
	read := func(offset int64, size int) ([]byte, error) {
		buf := make([]byte, size)
		_, err := r.ReadAt(buf, offset)
		return buf, err
	}

	raw, err := read(0, 8)
	if err != nil {
		return header{}, ErrInvalidHeader
	}

	var bo binary.ByteOrder
	switch string(raw[0:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return header{}, ErrInvalidHeader
	}
	if bo.Uint16(raw[2:4]) != 42 {
		return header{}, ErrInvalidHeader
	}
	ifdOffset := int64(bo.Uint32(raw[4:8]))

	entryCountRaw, err := read(ifdOffset, 2)
	if err != nil {
		return header{}, err
	}
	numEntries := int(bo.Uint16(entryCountRaw))
	entries, err := read(ifdOffset+2, numEntries*12)
	if err != nil {
		return header{}, err
	}

	hdr := header{
		byteOrder:       bo,
		samplesPerPixel: -1,
		photometric:     -1,
		compression:     -1,
		planarConfig:    1, // default
	}

	for i := 0; i < numEntries; i++ {
		entry := entries[i*12 : (i+1)*12]
		tag := bo.Uint16(entry[0:2])
		count := bo.Uint32(entry[4:8])
		valOffset := int64(bo.Uint32(entry[8:12]))

		readShortArray := func() ([]int, error) {
			if count == 1 {
				return []int{int(bo.Uint16(entry[8:10]))}, nil
			}
			buf, err := read(valOffset, int(count*2))
			if err != nil {
				return nil, err
			}
			out := make([]int, count)
			for i := uint32(0); i < count; i++ {
				out[i] = int(bo.Uint16(buf[i*2:]))
			}
			return out, nil
		}
		readLongArray := func() ([]int, error) {
			if count == 1 {
				return []int{int(valOffset)}, nil
			}
			buf, err := read(valOffset, int(count*4))
			if err != nil {
				return nil, err
			}
			out := make([]int, count)
			for i := uint32(0); i < count; i++ {
				out[i] = int(bo.Uint32(buf[i*4:]))
			}
			return out, nil
		}

		switch tag {
		case tagImageWidth:
			hdr.width = int(valOffset)
		case tagImageLength:
			hdr.height = int(valOffset)
		case tagBitsPerSample:
			if hdr.bitsPerSample, err = readShortArray(); err != nil {
				return header{}, err
			}
		case tagCompression:
			hdr.compression = int(bo.Uint16(entry[8:10]))
		case tagPhotometricInterpretation:
			hdr.photometric = int(bo.Uint16(entry[8:10]))
		case tagStripOffsets:
			if hdr.stripOffsets, err = readLongArray(); err != nil {
				return header{}, err
			}
		case tagSamplesPerPixel:
			hdr.samplesPerPixel = int(bo.Uint16(entry[8:10]))
		case tagRowsPerStrip:
			hdr.rowsPerStrip = int(valOffset)
		case tagStripByteCounts:
			if hdr.stripByteCounts, err = readLongArray(); err != nil {
				return header{}, err
			}
		case tagPlanarConfiguration:
			hdr.planarConfig = int(bo.Uint16(entry[8:10]))
		case tagTileWidth:
			hdr.tileWidth = int(valOffset)
		case tagTileLength:
			hdr.tileHeight = int(valOffset)
		case tagTileOffsets:
			if hdr.tileOffsets, err = readLongArray(); err != nil {
				return header{}, err
			}
		case tagTileByteCounts:
			if hdr.tileByteCounts, err = readLongArray(); err != nil {
				return header{}, err
			}
		}
	}

	if err := hdr.validate(); err != nil {
		return header{}, err
	}
	return hdr, nil
}

func (h header) validate() error {
	if h.width <= 0 || h.height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", h.width, h.height)
	}
	if h.compression != compressionNone && h.compression != compressionDeflate {
		return fmt.Errorf("unsupported compression: %d", h.compression)
	}
	if h.planarConfig != 1 {
		return fmt.Errorf("unsupported planar configuration: %d", h.planarConfig)
	}

	switch h.photometric {
	case photometricBlackIsZero:
		if h.samplesPerPixel != 1 || len(h.bitsPerSample) < 1 || h.bitsPerSample[0] != 8 {
			return fmt.Errorf("unsupported grayscale format")
		}
	case photometricRGB:
		if h.samplesPerPixel != 3 || len(h.bitsPerSample) != 3 || h.bitsPerSample[0] != 8 {
			return fmt.Errorf("unsupported RGB format")
		}
	default:
		return fmt.Errorf("unsupported photometric interpretation: %d", h.photometric)
	}

	if h.tiled() {
		if len(h.tileOffsets) != len(h.tileByteCounts) || h.tileWidth <= 0 || h.tileHeight <= 0 {
			return fmt.Errorf("invalid tile layout")
		}
		return nil
	}
	if len(h.stripOffsets) == 0 || len(h.stripOffsets) != len(h.stripByteCounts) {
		return fmt.Errorf("invalid strip offset/length")
	}
	if h.rowsPerStrip <= 0 {
		return fmt.Errorf("invalid rows per strip: %d", h.rowsPerStrip)
	}
	return nil
}
