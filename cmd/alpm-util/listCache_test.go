package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/errors"
	"github.com/pamac-go/alpmutil/lib/list"
	"github.com/pamac-go/alpmutil/lib/log/testlogger"
)

type fakeLoader map[string]*alpm.Package

func (l fakeLoader) LoadPackage(filename string, full bool,
	level alpm.SigLevel) (*alpm.Package, error) {
	if pkg, ok := l[filepath.Base(filename)]; ok {
		return pkg, nil
	}
	return nil, errors.NewInvalidArgumentError(filename, "corrupt")
}

func TestSortPackages(t *testing.T) {
	packages := list.New[*alpm.Package]()
	for _, pkg := range []*alpm.Package{
		{Name: "zlib", Version: "1.2.13-1"},
		{Name: "bash", Version: "5.2.15-1"},
		{Name: "zlib", Version: "1.2.9-2"},
		{Name: "bash", Version: "5.1.16-3"},
		{Name: "bash", Version: "5.10.0-1"},
		{Name: "pacman", Version: "6.1.0-1"},
		{Name: "pacman", Version: "6.1.0rc1-1"},
		{Name: "pacman", Version: "6.0.2-3"},
		{Name: "python", Version: "1:3.0-1"},
		{Name: "python", Version: "3.12.1-1"},
	} {
		packages = packages.Add(pkg)
	}
	packages = sortPackages(packages)
	defer packages.Free()
	want := []string{"bash 5.1.16-3", "bash 5.2.15-1", "bash 5.10.0-1",
		"pacman 6.0.2-3", "pacman 6.1.0rc1-1", "pacman 6.1.0-1",
		"python 3.12.1-1", "python 1:3.0-1",
		"zlib 1.2.9-2", "zlib 1.2.13-1"}
	got := packages.Values()
	if len(got) != len(want) {
		t.Fatalf("got %d packages, want %d", len(got), len(want))
	}
	for index, pkg := range got {
		if name := pkg.Name + " " + pkg.Version; name != want[index] {
			t.Errorf("position %d: got: %s, want: %s", index, name,
				want[index])
		}
	}
}

func TestLoadCache(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"bash-5.2.15-1-x86_64.pkg.tar.zst",
		"bash-5.2.15-1-x86_64.pkg.tar.zst.sig",
		"broken-1-1-any.pkg.tar.zst",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	loader := fakeLoader{
		"bash-5.2.15-1-x86_64.pkg.tar.zst": {Name: "bash",
			Version: "5.2.15-1"},
	}
	packages, err := loadCache(loader,
		[]string{dir, filepath.Join(dir, "missing")}, testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	defer packages.Free()
	if count := packages.Count(); count != 1 {
		t.Fatalf("loaded %d packages, want 1", count)
	}
	if pkg, _ := packages.Data(); pkg.Name != "bash" {
		t.Errorf("loaded: %s", pkg.Name)
	}
}
