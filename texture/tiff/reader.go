package tiff

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image"
	"image/color"
	"io"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/mmap"
)

// blockCacheSize bounds how many decoded strips/tiles stay resident at once.
const blockCacheSize = 200

// reader exposes a striped or tiled baseline TIFF as an image.Image. Pixel
// reads decode one strip or tile at a time and keep recently used blocks in
// an LRU cache, so sampling a texture never materializes the full bitmap.
type reader struct {
	header header
	data   *mmap.ReaderAt
	cache  *lru.Cache // block index -> decoded []byte
}

// Open memory-maps the TIFF at path. It returns ErrInvalidHeader (wrapped)
// when the file is not a TIFF, so callers can fall back to other codecs.
func Open(path string) (image.Image, error) {
	data, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	hdr, err := parseHeader(data)
	if err != nil {
		data.Close()
		return nil, err
	}

	cache, _ := lru.New(blockCacheSize)
	return &reader{header: hdr, data: data, cache: cache}, nil
}

func (r *reader) ColorModel() color.Model {
	return color.RGBAModel
}

func (r *reader) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.header.width, r.header.height)
}

func (r *reader) At(x, y int) color.Color {
	h := r.header

	var block []byte
	var pixOffset int
	if h.tiled() {
		tileX := x / h.tileWidth
		tileY := y / h.tileHeight
		tilesAcross := (h.width + h.tileWidth - 1) / h.tileWidth
		block = r.block(tileY*tilesAcross+tileX, h.tileOffsets, h.tileByteCounts)
		pixOffset = ((y%h.tileHeight)*h.tileWidth + x%h.tileWidth) * h.samplesPerPixel
	} else {
		strip := y / h.rowsPerStrip
		block = r.block(strip, h.stripOffsets, h.stripByteCounts)
		pixOffset = ((y%h.rowsPerStrip)*h.width + x) * h.samplesPerPixel
	}

	switch h.photometric {
	case photometricRGB:
		return color.RGBA{
			R: block[pixOffset],
			G: block[pixOffset+1],
			B: block[pixOffset+2],
			A: 255,
		}
	case photometricBlackIsZero:
		v := block[pixOffset]
		return color.RGBA{R: v, G: v, B: v, A: 255}
	default:
		panic(fmt.Sprintf("unsupported photometric interpretation: %d", h.photometric))
	}
}

// block returns the decoded bytes of one strip or tile, from cache if warm.
func (r *reader) block(index int, offsets, byteCounts []int) []byte {
	if val, ok := r.cache.Get(index); ok {
		return val.([]byte)
	}

	buf := make([]byte, byteCounts[index])
	if _, err := r.data.ReadAt(buf, int64(offsets[index])); err != nil {
		panic(fmt.Sprintf("failed to read block %d: %v", index, err))
	}

	if r.header.compression == compressionDeflate {
		zr, err := zlib.NewReader(bytes.NewReader(buf))
		if err != nil {
			panic(fmt.Sprintf("failed to inflate block %d: %v", index, err))
		}
		decoded, err := io.ReadAll(zr)
		zr.Close()
		if err != nil {
			panic(fmt.Sprintf("failed to inflate block %d: %v", index, err))
		}
		buf = decoded
	}

	r.cache.Add(index, buf)
	return buf
}
