package alpm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

func parsePkgInfo(reader io.Reader, pkg *Package) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("malformed line: %s", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "pkgname":
			pkg.Name = value
		case "pkgbase":
			pkg.Base = value
		case "pkgver":
			pkg.Version = value
		case "pkgdesc":
			pkg.Description = value
		case "url":
			pkg.URL = value
		case "builddate":
			seconds, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("malformed builddate: %s", value)
			}
			pkg.BuildDate = time.Unix(seconds, 0).UTC()
		case "packager":
			pkg.Packager = value
		case "arch":
			pkg.Arch = value
		case "size":
			size, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return fmt.Errorf("malformed size: %s", value)
			}
			pkg.InstalledSize = size
		case "license":
			pkg.Licenses = append(pkg.Licenses, value)
		case "group":
			pkg.Groups = append(pkg.Groups, value)
		case "depend":
			pkg.Depends = append(pkg.Depends, value)
		case "optdepend":
			pkg.OptDepends = append(pkg.OptDepends, value)
		case "provides":
			pkg.Provides = append(pkg.Provides, value)
		case "conflict":
			pkg.Conflicts = append(pkg.Conflicts, value)
		case "replaces":
			pkg.Replaces = append(pkg.Replaces, value)
		case "backup":
			pkg.Backup = append(pkg.Backup, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if pkg.Name == "" {
		return fmt.Errorf("missing pkgname")
	}
	if pkg.Version == "" {
		return fmt.Errorf("missing pkgver")
	}
	return nil
}
