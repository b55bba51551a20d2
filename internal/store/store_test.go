package store_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stegcrypt/internal/crypto"
	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/rsa"
	"stegcrypt/internal/store"
)

// writePNG encodes img to a file under dir and returns its path.
func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return path
}

func TestImageStore_RoundTripPreservesAlpha(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 13)
	}
	path := writePNG(t, dir, src)

	var s domain.ImageStore = store.NewImageFileStore()
	c, err := s.LoadCarrier(path)
	if err != nil {
		t.Fatalf("LoadCarrier: %v", err)
	}
	if c.Width != 5 || c.Height != 4 || len(c.Pix) != 60 || len(c.Alpha) != 20 {
		t.Fatalf("carrier %dx%d pix=%d alpha=%d", c.Width, c.Height, len(c.Pix), len(c.Alpha))
	}
	if c.Pix[3] != src.Pix[4] || c.Alpha[0] != src.Pix[3] {
		t.Fatal("channel layout mismatch")
	}

	c.Pix[0] ^= 1
	out := filepath.Join(dir, "out.png")
	if err := s.SaveCarrier(out, c); err != nil {
		t.Fatalf("SaveCarrier: %v", err)
	}
	back, err := s.LoadCarrier(out)
	if err != nil {
		t.Fatalf("LoadCarrier(out): %v", err)
	}
	if !bytes.Equal(back.Pix, c.Pix) || !bytes.Equal(back.Alpha, c.Alpha) {
		t.Fatal("saved carrier did not round trip")
	}
}

func TestImageStore_ConvertsGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(1, 1, color.Gray{Y: 200})
	c := store.CarrierFromImage(g)
	if c.Pix[9] != 200 || c.Pix[10] != 200 || c.Pix[11] != 200 || c.Alpha[3] != 0xFF {
		t.Fatalf("gray conversion: pix=% x alpha=% x", c.Pix, c.Alpha)
	}
}

func TestImageStore_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	img.SetNRGBA(11, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	c := store.CarrierFromImage(img)
	if c.Width != 2 || c.Height != 1 || c.Pix[3] != 1 || c.Pix[5] != 3 || c.Alpha[1] != 4 {
		t.Fatalf("offset image: %+v", c)
	}
}

func TestImageStore_BadInputs(t *testing.T) {
	dir := t.TempDir()
	s := store.NewImageFileStore()
	if _, err := s.LoadCarrier(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: want ErrNotExist, got %v", err)
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.LoadCarrier(bad); err == nil {
		t.Fatal("expected decode error")
	}
	if err := s.SaveCarrier(filepath.Join(dir, "x.png"), domain.Carrier{Width: 2, Height: 2}); err == nil {
		t.Fatal("expected error for inconsistent carrier")
	}
}

func TestKeyStore_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.sealed")
	var ks domain.KeyStore = store.NewKeyFileStore(path, nil, crypto.ScryptParams{N: 1 << 10, R: 8, P: 1})

	key, err := rsa.ParsePrivateKey("2753-3233000017")
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if err := ks.SaveKey("pass", key); err != nil {
		t.Fatalf("SaveKey: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("key file mode %v, want 0600", info.Mode().Perm())
	}

	got, err := ks.LoadKey("pass")
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}
	if got.D.Cmp(key.D) != 0 || got.N.Cmp(key.N) != 0 {
		t.Fatalf("loaded %s", rsa.FormatPrivateKey(got))
	}
}

func TestKeyStore_WrongPassphrase_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.sealed")
	ks := store.NewKeyFileStore(path, nil, crypto.ScryptParams{N: 1 << 10, R: 8, P: 1})
	key, err := rsa.ParsePrivateKey("2753-3233000017")
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if err := ks.SaveKey("correct", key); err != nil {
		t.Fatalf("SaveKey: %v", err)
	}
	if _, err := ks.LoadKey("wrong"); !errors.Is(err, crypto.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestMessage_WriteReplacesAndReads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msg.txt")
	if err := os.WriteFile(path, []byte("a much longer previous message"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteMessage(path, []byte("hi")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	got, err := store.ReadMessage(path)
	if err != nil || string(got) != "hi" {
		t.Fatalf("ReadMessage = %q, %v", got, err)
	}
	if _, err := store.ReadMessage(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: want ErrNotExist, got %v", err)
	}
}

func TestMessage_FailedWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target makes the final rename fail.
	target := filepath.Join(dir, "out")
	if err := os.MkdirAll(filepath.Join(target, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteMessage(target, []byte("secret")); err == nil {
		t.Fatal("expected write over a directory to fail")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file %s left behind", e.Name())
		}
	}
	if _, err := os.Stat(filepath.Join(target, "keep")); err != nil {
		t.Fatalf("target directory disturbed: %v", err)
	}
}
