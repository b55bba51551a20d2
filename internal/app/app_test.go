package app_test

import (
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"stegcrypt/internal/app"
	"stegcrypt/internal/crypto"
	"stegcrypt/internal/domain"
)

func newApp(seed byte) *app.App {
	var s [32]byte
	s[0] = seed
	return app.New(app.Config{
		PrimeBits: 16,
		Rand:      rand.NewChaCha8(s),
		Scrypt:    crypto.ScryptParams{N: 1 << 10, R: 8, P: 1},
	})
}

func writeFixtures(t *testing.T, w, h int, msg string) (dir, cover, data string) {
	t.Helper()
	dir = t.TempDir()
	cover = filepath.Join(dir, "cover.png")
	f, err := os.Create(cover)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	f.Close()
	data = filepath.Join(dir, "msg")
	if err := os.WriteFile(data, []byte(msg), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, cover, data
}

func TestHideFile_ExtractFile(t *testing.T) {
	dir, cover, data := writeFixtures(t, 20, 20, "attack at dawn")
	a := newApp(1)
	out := filepath.Join(dir, "stego.png")

	res, err := a.HideFile(cover, data, out, 3)
	if err != nil {
		t.Fatalf("HideFile: %v", err)
	}
	if res.Output != out || !res.Plan.Fits() {
		t.Fatalf("result = %+v", res)
	}

	got, err := a.ExtractFile(out, 3, res.Key.Private)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if string(got) != "attack at dawn" {
		t.Fatalf("got %q", got)
	}
}

func TestHideFile_DefaultsToSource(t *testing.T) {
	_, cover, data := writeFixtures(t, 20, 20, "x")
	a := newApp(2)

	res, err := a.HideFile(cover, data, "", 1)
	if err != nil {
		t.Fatalf("HideFile: %v", err)
	}
	if res.Output != cover {
		t.Fatalf("Output = %q, want %q", res.Output, cover)
	}
	got, err := a.ExtractFile(cover, 0, res.Key.Private)
	if err != nil || string(got) != "x" {
		t.Fatalf("ExtractFile = %q, %v", got, err)
	}
}

func TestHideFile_CapacityKeepsPlan(t *testing.T) {
	_, cover, data := writeFixtures(t, 4, 4, "far too long for sixteen pixels")
	a := newApp(3)

	res, err := a.HideFile(cover, data, "", 1)
	if !domain.IsKind(err, domain.KindCapacity) {
		t.Fatalf("err = %v, want capacity", err)
	}
	if res.Plan.Overflow() <= 0 {
		t.Fatalf("plan = %+v, want overflow", res.Plan)
	}
}

func TestCapacities(t *testing.T) {
	_, cover, _ := writeFixtures(t, 10, 10, "")
	a := newApp(4)

	caps, err := a.Capacities(cover, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Capacities: %v", err)
	}
	for k := 2; k <= 4; k++ {
		if caps[k] < caps[k-1] {
			t.Fatalf("capacity shrank from k=%d to k=%d: %v", k-1, k, caps)
		}
	}
}

func TestKeyFile_RoundTrip(t *testing.T) {
	dir, cover, data := writeFixtures(t, 20, 20, "hi")
	a := newApp(5)

	res, err := a.HideFile(cover, data, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	ks := a.KeyFile(filepath.Join(dir, "key"))
	if err := ks.SaveKey("pw", res.Key.Private); err != nil {
		t.Fatalf("SaveKey: %v", err)
	}
	key, err := ks.LoadKey("pw")
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}
	got, err := a.ExtractFile(cover, 2, key)
	if err != nil || string(got) != "hi" {
		t.Fatalf("ExtractFile = %q, %v", got, err)
	}
}
