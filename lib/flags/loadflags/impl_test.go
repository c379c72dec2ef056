package loadflags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "flags.default"),
		[]byte("# comment\nrootDir = /mnt\n\n; other comment\nfull=true\n"),
		0644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "flags.extra"),
		[]byte("rootDir=/srv\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	rootDir := flagSet.String("rootDir", "/", "")
	full := flagSet.Bool("full", false, "")
	if err := loadFlags(flagSet, dir); err != nil {
		t.Fatal(err)
	}
	if *rootDir != "/srv" {
		t.Errorf("rootDir=%s", *rootDir)
	}
	if !*full {
		t.Error("full not set")
	}
}

func TestLoadFlagsErrors(t *testing.T) {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.String("rootDir", "/", "")
	if err := loadFlags(flagSet, t.TempDir()); err != nil {
		t.Errorf("missing files should be ignored: %s", err)
	}
	for _, contents := range []string{"noequals\n", "root Dir=/\n",
		"unknown=1\n"} {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, "flags.default"),
			[]byte(contents), 0644)
		if err != nil {
			t.Fatal(err)
		}
		if err := loadFlags(flagSet, dir); err == nil {
			t.Errorf("no error for: %q", contents)
		}
	}
}
