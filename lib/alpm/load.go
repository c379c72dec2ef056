package alpm

import (
	"archive/tar"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pamac-go/alpmutil/lib/errors"
	"github.com/pamac-go/alpmutil/lib/format"
)

func (h *Handle) loadPackage(filename string, full bool,
	level SigLevel) (*Package, error) {
	startTime := time.Now()
	pkg, err := h.loadPackageUnmetered(filename, full, level)
	loadTime := time.Since(startTime)
	loadTimeDistribution.Add(loadTime)
	if err != nil {
		numPackageLoadFailures++
		return nil, err
	}
	numPackagesLoaded++
	h.logger.Debugf(2, "loaded %s-%s from: %s in %s\n",
		pkg.Name, pkg.Version, filename, format.Duration(loadTime))
	return pkg, nil
}

func (h *Handle) loadPackageUnmetered(filename string, full bool,
	level SigLevel) (*Package, error) {
	if level&SigUseDefault != 0 {
		level = h.params.LocalFileSigLevel
	}
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("package file", filename)
		}
		return nil, err
	}
	signed, err := h.checkSignature(filename, level)
	if err != nil {
		return nil, err
	}
	pkg, err := readPackage(filename, full)
	if err != nil {
		return nil, err
	}
	pkg.Signed = signed
	return pkg, nil
}

func readPackage(filename string, full bool) (*Package, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	reader, err := decompress(file)
	if err != nil {
		return nil, errors.NewInvalidArgumentError(filename, err.Error())
	}
	defer reader.Close()
	pkg, err := readArchive(tar.NewReader(reader), full)
	if err != nil {
		return nil, errors.NewInvalidArgumentError(filename, err.Error())
	}
	pkg.Filename = filename
	return pkg, nil
}

func readArchive(tarReader *tar.Reader, full bool) (*Package, error) {
	pkg := &Package{}
	haveInfo := false
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(header.Name, "./")
		if name == ".PKGINFO" {
			if err := parsePkgInfo(tarReader, pkg); err != nil {
				return nil, err
			}
			haveInfo = true
			if !full {
				break
			}
			continue
		}
		if !full || name == "" || name[0] == '.' {
			continue
		}
		if header.Typeflag == tar.TypeDir && !strings.HasSuffix(name, "/") {
			name += "/"
		}
		pkg.Files.Files = append(pkg.Files.Files, File{
			Name: name,
			Size: header.Size,
			Mode: header.FileInfo().Mode(),
		})
	}
	if !haveInfo {
		return nil, errors.NewNotFoundError(".PKGINFO", "")
	}
	files := pkg.Files.Files
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return pkg, nil
}
