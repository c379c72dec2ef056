package alpm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pamac-go/alpmutil/lib/errors"
	"golang.org/x/crypto/openpgp"
	pgperrors "golang.org/x/crypto/openpgp/errors"
)

func loadKeyring(gpgDir string) (openpgp.EntityList, error) {
	var keyring openpgp.EntityList
	if gpgDir == "" {
		return keyring, nil
	}
	filename := filepath.Join(gpgDir, "pubring.gpg")
	if file, err := os.Open(filename); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		entities, err := openpgp.ReadKeyRing(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading: %s: %s", filename, err)
		}
		keyring = append(keyring, entities...)
	}
	filenames, err := filepath.Glob(filepath.Join(gpgDir, "*.asc"))
	if err != nil {
		return nil, err
	}
	for _, filename := range filenames {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		entities, err := openpgp.ReadArmoredKeyRing(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading: %s: %s", filename, err)
		}
		keyring = append(keyring, entities...)
	}
	return keyring, nil
}

func (h *Handle) getKeyring() (openpgp.EntityList, error) {
	if h.keyringLoaded {
		return h.keyring, nil
	}
	keyring, err := loadKeyring(h.params.GPGDir)
	if err != nil {
		return nil, err
	}
	h.logger.Debugf(1, "loaded %d keys from: %s\n", len(keyring),
		h.params.GPGDir)
	h.keyring = keyring
	h.keyringLoaded = true
	return keyring, nil
}

// checkSignature verifies the detached signature for filename according to
// level. It returns true if a signature was verified against a known key.
func (h *Handle) checkSignature(filename string, level SigLevel) (bool, error) {
	if level&SigPackage == 0 {
		return false, nil
	}
	sigFile, err := os.Open(filename + ".sig")
	if err != nil {
		if !os.IsNotExist(err) {
			return false, err
		}
		if level&SigPackageOptional != 0 {
			return false, nil
		}
		return false, errors.NewFailedPreconditionError(filename,
			"signature missing", "")
	}
	defer sigFile.Close()
	keyring, err := h.getKeyring()
	if err != nil {
		return false, err
	}
	pkgFile, err := os.Open(filename)
	if err != nil {
		return false, err
	}
	defer pkgFile.Close()
	signer, err := openpgp.CheckDetachedSignature(keyring, pkgFile, sigFile)
	if err == nil {
		h.logger.Debugf(1, "%s: signed by key: %X\n",
			filename, signer.PrimaryKey.Fingerprint)
		return true, nil
	}
	if err == pgperrors.ErrUnknownIssuer {
		if level&SigPackageUnknownOk != 0 {
			h.logger.Debugf(0, "%s: signed by unknown key, accepting\n",
				filename)
			return false, nil
		}
		return false, errors.NewFailedPreconditionError(filename,
			"signature invalid", "unknown key")
	}
	return false, errors.NewFailedPreconditionError(filename,
		"signature invalid", err.Error())
}
