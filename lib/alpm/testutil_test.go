package alpm

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

const testPkgInfo = `# Generated by makepkg
pkgname = hello
pkgbase = hello
xdata = pkgtype=pkg
pkgver = 2.12-1
pkgdesc = Produce a friendly greeting
url = https://www.gnu.org/software/hello/
builddate = 1700000000
packager = Test Packager <test@example.com>
size = 204800
arch = x86_64
license = GPL-3.0-or-later
depend = glibc
optdepend = bash: completion
backup = etc/hello.conf
`

type testEntry struct {
	name     string
	typeflag byte
	mode     int64
	body     string
}

var (
	testEntries = []testEntry{
		{".BUILDINFO", tar.TypeReg, 0644, "format = 2\n"},
		{".MTREE", tar.TypeReg, 0644, "#mtree\n"},
		{"usr/share/doc/hello/README", tar.TypeReg, 0644, "Hello\n"},
		{"usr", tar.TypeDir, 0755, ""},
		{"./usr/bin/", tar.TypeDir, 0755, ""},
		{"usr/bin/hello", tar.TypeReg, 0755, "#!/bin/sh\necho hello\n"},
		{"etc/hello.conf", tar.TypeReg, 0644, "greeting=hi\n"},
	}

	signerOnce   sync.Once
	signer       *openpgp.Entity
	otherSigner  *openpgp.Entity
	signerErrors []error
)

func getSigners(t *testing.T) (*openpgp.Entity, *openpgp.Entity) {
	signerOnce.Do(func() {
		var err error
		signer, err = openpgp.NewEntity("Test Packager", "",
			"test@example.com", nil)
		if err != nil {
			signerErrors = append(signerErrors, err)
		}
		otherSigner, err = openpgp.NewEntity("Other Packager", "",
			"other@example.com", nil)
		if err != nil {
			signerErrors = append(signerErrors, err)
		}
	})
	if len(signerErrors) > 0 {
		t.Fatal(signerErrors[0])
	}
	return signer, otherSigner
}

func makeTar(t *testing.T, pkgInfo string, entries []testEntry) []byte {
	buffer := &bytes.Buffer{}
	writer := tar.NewWriter(buffer)
	if pkgInfo != "" {
		entries = append([]testEntry{
			{".PKGINFO", tar.TypeReg, 0644, pkgInfo}}, entries...)
	}
	for _, entry := range entries {
		header := &tar.Header{
			Name:     entry.name,
			Typeflag: entry.typeflag,
			Mode:     entry.mode,
			Size:     int64(len(entry.body)),
		}
		if err := writer.WriteHeader(header); err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(writer, entry.body); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

func compress(t *testing.T, data []byte, compression string) []byte {
	buffer := &bytes.Buffer{}
	var writer io.WriteCloser
	var err error
	switch compression {
	case "":
		return data
	case "gz":
		writer = gzip.NewWriter(buffer)
	case "xz":
		writer, err = xz.NewWriter(buffer)
	case "zst":
		writer, err = zstd.NewWriter(buffer)
	default:
		t.Fatalf("unsupported compression: %s", compression)
	}
	if err != nil {
		t.Fatal(err)
	}
	if _, err := writer.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

// writePackage writes a package archive into dir and returns the filename.
func writePackage(t *testing.T, dir, compression, pkgInfo string,
	entries []testEntry) string {
	filename := filepath.Join(dir, "hello-2.12-1-x86_64.pkg.tar")
	if compression != "" {
		filename += "." + compression
	}
	data := compress(t, makeTar(t, pkgInfo, entries), compression)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func signPackage(t *testing.T, filename string, entity *openpgp.Entity) {
	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	sigFile, err := os.Create(filename + ".sig")
	if err != nil {
		t.Fatal(err)
	}
	defer sigFile.Close()
	if err := openpgp.DetachSign(sigFile, entity, file, nil); err != nil {
		t.Fatal(err)
	}
}

func writeArmoredKey(t *testing.T, filename string, entity *openpgp.Entity) {
	file, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	writer, err := armor.Encode(file, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.Serialize(writer); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
}
