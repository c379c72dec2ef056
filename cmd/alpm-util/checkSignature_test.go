package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/log/testlogger"
	"golang.org/x/crypto/openpgp"
)

func TestCheckSignatures(t *testing.T) {
	packager := newEntity(t, "packager")
	stranger := newEntity(t, "stranger")
	dir := t.TempDir()
	signed := writePackage(t, dir, "signed")
	signPackage(t, signed, packager)
	unknown := writePackage(t, dir, "unknown")
	signPackage(t, unknown, stranger)
	unsigned := writePackage(t, dir, "unsigned")
	missing := filepath.Join(dir, "missing-1-1-any.pkg.tar.zst")
	var tests = []struct {
		name      string
		level     alpm.SigLevel
		numFailed int
		want      map[string]string
	}{
		{"required", alpm.SigPackage, 3, map[string]string{
			signed:   "signature OK",
			unknown:  "signature invalid",
			unsigned: "signature missing",
			missing:  "not found",
		}},
		{"optional", alpm.SigPackage | alpm.SigPackageOptional, 2,
			map[string]string{
				signed:   "signature OK",
				unknown:  "signature invalid",
				unsigned: "unsigned, accepted by",
				missing:  "not found",
			}},
		{"trust-all", alpm.SigPackage | alpm.SigPackageOptional |
			alpm.SigPackageUnknownOk, 1, map[string]string{
			signed:   "signature OK",
			unknown:  "unsigned, accepted by",
			unsigned: "unsigned, accepted by",
			missing:  "not found",
		}},
	}
	for _, test := range tests {
		h, err := alpm.NewHandle(alpm.Params{
			RootDir:           "/",
			DBPath:            "/var/lib/pacman/",
			LocalFileSigLevel: test.level,
			Keyring:           openpgp.EntityList{packager},
			Logger:            testlogger.New(t),
		})
		if err != nil {
			t.Fatal(err)
		}
		buffer := &bytes.Buffer{}
		numFailed := checkSignatures(buffer, h,
			[]string{signed, unknown, unsigned, missing})
		if numFailed != test.numFailed {
			t.Errorf("%s: %d failed, want %d", test.name, numFailed,
				test.numFailed)
		}
		lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"),
			"\n")
		if len(lines) != 4 {
			t.Fatalf("%s: output: %q", test.name, buffer.String())
		}
		for _, line := range lines {
			filename, result, _ := strings.Cut(line, ": ")
			if !strings.Contains(result, test.want[filename]) {
				t.Errorf("%s: %s: got: %q, want: %q", test.name, filename,
					result, test.want[filename])
			}
		}
	}
}
