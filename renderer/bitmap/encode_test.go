package bitmap

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ByLCY/bitpress/internal/fonttest"
	"github.com/ByLCY/bitpress/layout"
	"github.com/ByLCY/bitpress/raster"
)

func sample(width, height int) *raster.Buffer {
	buf := raster.NewBuffer(width, height)
	buf.Fill(raster.SplitColor(0xFFFFFF))
	buf.SetPixel(0, 0, raster.SplitColor(0x1F1E33))
	buf.SetPixel(width-1, height-1, raster.SplitColor(0x0000FF))
	return buf
}

func TestEncodeHeader(t *testing.T) {
	out := Encode(sample(7, 5))
	// 7*3 = 21 -> 24 字节每行。
	if len(out) != 54+24*5 {
		t.Fatalf("len = %d", len(out))
	}
	want := []byte{
		0x42, 0x4D, 0xAE, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0x36, 0, 0, 0,
		0x28, 0, 0, 0, 7, 0, 0, 0, 5, 0, 0, 0,
		0x01, 0x00, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x78, 0, 0, 0,
		0x13, 0x0B, 0x00, 0x00, 0x13, 0x0B, 0x00, 0x00,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(out[:54], want) {
		t.Fatalf("header\n got %x\nwant %x", out[:54], want)
	}
	if got := binary.LittleEndian.Uint32(out[2:6]); int(got) != len(out) {
		t.Fatalf("declared size %d != %d", got, len(out))
	}
}

func TestEncodeRowsBottomUp(t *testing.T) {
	out := Encode(sample(7, 5))
	// 第一行数据是画布的最后一行，最右像素 0x0000FF 按低字节在前写入。
	last := out[54 : 54+24]
	if !bytes.Equal(last[18:21], []byte{0xFF, 0x00, 0x00}) {
		t.Fatalf("bottom-right pixel bytes %x", last[18:21])
	}
	if !bytes.Equal(last[21:24], []byte{0, 0, 0}) {
		t.Fatalf("row padding should be zero, got %x", last[21:24])
	}
	top := out[54+24*4:]
	if !bytes.Equal(top[:3], []byte{0x33, 0x1E, 0x1F}) {
		t.Fatalf("top-left pixel bytes %x", top[:3])
	}
}

func TestRowSize(t *testing.T) {
	for w := 0; w < 64; w++ {
		rs := RowSize(w)
		if rs%4 != 0 || rs < w*3 || rs-w*3 > 3 {
			t.Fatalf("RowSize(%d) = %d", w, rs)
		}
	}
	if FileSize(801, 76) != 54+2404*76 {
		t.Fatalf("FileSize(801, 76) = %d", FileSize(801, 76))
	}
}

func TestEncodeIdempotentAndWrite(t *testing.T) {
	buf := raster.Rasterize("Hello World", 0, fonttest.Times36(), layout.DefaultOptions())
	a, b := Encode(buf), Encode(buf)
	if !bytes.Equal(a, b) {
		t.Fatalf("encoding is not deterministic")
	}
	var w bytes.Buffer
	if err := Write(&w, buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(w.Bytes(), a) {
		t.Fatalf("Write and Encode differ")
	}
}

func TestDecodeWithXImage(t *testing.T) {
	buf := sample(5, 3)
	img, err := bmp.Decode(bytes.NewReader(Encode(buf)))
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want := buf.At(x, y)
			got := color.RGBAModel.Convert(img.At(x, y))
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderer(t *testing.T) {
	r := Renderer{}
	if r.Extension() != ".bmp" {
		t.Fatalf("extension %s", r.Extension())
	}
	files, err := r.Render([]*raster.Buffer{sample(2, 2), sample(3, 3)}, layout.DocumentMeta{})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || !bytes.HasPrefix(files[1], []byte("BM")) {
		t.Fatalf("expected one BMP per page")
	}
	if _, err := r.Render(nil, layout.DocumentMeta{}); err == nil {
		t.Fatalf("expected error for no pages")
	}
}
