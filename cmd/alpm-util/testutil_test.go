package main

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/crypto/openpgp"
)

const testPkgInfo = "pkgname = hello\npkgver = 2.12-1\narch = x86_64\n"

// writePackage writes a gzip compressed package containing only .PKGINFO.
func writePackage(t *testing.T, dir, name string) string {
	filename := filepath.Join(dir, name+"-2.12-1-x86_64.pkg.tar.gz")
	file, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	gzipWriter := gzip.NewWriter(file)
	tarWriter := tar.NewWriter(gzipWriter)
	header := &tar.Header{
		Name:     ".PKGINFO",
		Typeflag: tar.TypeReg,
		Mode:     0644,
		Size:     int64(len(testPkgInfo)),
	}
	if err := tarWriter.WriteHeader(header); err != nil {
		t.Fatal(err)
	}
	if _, err := tarWriter.Write([]byte(testPkgInfo)); err != nil {
		t.Fatal(err)
	}
	if err := tarWriter.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gzipWriter.Close(); err != nil {
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

func newEntity(t *testing.T, name string) *openpgp.Entity {
	entity, err := openpgp.NewEntity(name, "", name+"@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	return entity
}
