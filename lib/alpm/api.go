package alpm

import (
	"os"
	"time"

	"github.com/pamac-go/alpmutil/lib/log"
	"golang.org/x/crypto/openpgp"
)

// SigLevel controls signature checking of packages and databases.
type SigLevel uint32

const (
	SigPackage SigLevel = 1 << iota
	SigPackageOptional
	SigPackageMarginalOk
	SigPackageUnknownOk
)

const (
	SigDatabase SigLevel = 1 << (iota + 10)
	SigDatabaseOptional
	SigDatabaseMarginalOk
	SigDatabaseUnknownOk
)

const (
	// SigPackageSet records that a directive set the package check bits.
	SigPackageSet SigLevel = 1 << (iota + 27)
	// SigPackageTrustSet records that a directive set the package trust bits.
	SigPackageTrustSet
	_
	// SigUseDefault selects the LocalFileSigLevel of the Handle.
	SigUseDefault
)

const DefaultSigLevel = SigPackage | SigPackageOptional | SigDatabase |
	SigDatabaseOptional

type File struct {
	Name string // Relative to the root, directories end with "/".
	Size int64
	Mode os.FileMode
}

type FileList struct {
	Files []File // Sorted by Name.
}

type Package struct {
	Filename      string
	Name          string
	Base          string   `json:",omitempty" yaml:",omitempty"`
	Version       string
	Description   string   `json:",omitempty" yaml:",omitempty"`
	URL           string   `json:",omitempty" yaml:",omitempty"`
	BuildDate     time.Time
	Packager      string   `json:",omitempty" yaml:",omitempty"`
	Arch          string   `json:",omitempty" yaml:",omitempty"`
	InstalledSize uint64   `json:",omitempty" yaml:",omitempty"`
	Licenses      []string `json:",omitempty" yaml:",omitempty"`
	Groups        []string `json:",omitempty" yaml:",omitempty"`
	Depends       []string `json:",omitempty" yaml:",omitempty"`
	OptDepends    []string `json:",omitempty" yaml:",omitempty"`
	Provides      []string `json:",omitempty" yaml:",omitempty"`
	Conflicts     []string `json:",omitempty" yaml:",omitempty"`
	Replaces      []string `json:",omitempty" yaml:",omitempty"`
	Backup        []string `json:",omitempty" yaml:",omitempty"`
	Signed        bool     // True if a signature was verified.
	Files         FileList `json:"-" yaml:"-"`
}

type Params struct {
	RootDir            string
	DBPath             string
	GPGDir             string
	Architecture       string
	CacheDirs          []string
	SigLevel           SigLevel
	LocalFileSigLevel  SigLevel
	RemoteFileSigLevel SigLevel
	Keyring            openpgp.EntityList // If nil, read from GPGDir.
	Logger             log.DebugLogger
}

// Handle is the entry point for loading packages. It is not safe for
// concurrent use.
type Handle struct {
	params        Params
	keyring       openpgp.EntityList
	keyringLoaded bool
	logger        log.DebugLogger
	syncDBs       []*SyncDB
}

type SyncDB struct {
	Name     string
	SigLevel SigLevel
	Servers  []string
}

// MergeSigLevel fills in the package bits of over from base, unless over has
// them explicitly set.
func MergeSigLevel(base, over SigLevel) SigLevel {
	return mergeSigLevel(base, over)
}

// ParseSigLevel applies the space separated pacman.conf SigLevel directives to
// level and returns the result. Directives are of the form
// [Package|Database]{Never,Optional,Required,TrustedOnly,TrustAll}.
func ParseSigLevel(level SigLevel, directives string) (SigLevel, error) {
	return parseSigLevel(level, directives)
}

// VerCmp compares two package versions of the form [epoch:]version[-release]
// and returns -1, 0 or 1. The epoch (default 0) takes precedence over the
// version, which takes precedence over the release. The release is only
// compared if both versions have one. Alphabetic segments sort before numeric
// ones, and a trailing alphabetic segment marks a pre-release, so "1.0rc1"
// sorts before "1.0".
func VerCmp(left, right string) int {
	return verCmp(left, right)
}

// NewHandle creates a Handle. RootDir and DBPath are required.
func NewHandle(params Params) (*Handle, error) {
	return newHandle(params)
}

// LoadPackage loads the package archive in filename. If full is false only
// the package metadata are read and the file list is left empty. The
// signature is checked according to level; SigUseDefault selects the
// LocalFileSigLevel of the Handle.
func (h *Handle) LoadPackage(filename string, full bool,
	level SigLevel) (*Package, error) {
	return h.loadPackage(filename, full, level)
}

// Params returns the parameters the Handle was created with.
func (h *Handle) Params() Params {
	return h.params
}

// RegisterSyncDB registers a sync database with the specified signature level.
// Registering a name twice returns the existing database.
func (h *Handle) RegisterSyncDB(name string, level SigLevel) *SyncDB {
	return h.registerSyncDB(name, level)
}

// SyncDBs returns the registered sync databases in registration order.
func (h *Handle) SyncDBs() []*SyncDB {
	return h.syncDBs
}

func (level SigLevel) MarshalText() ([]byte, error) {
	return []byte(level.String()), nil
}

// String returns the names of the set bits, separated by "|".
func (level SigLevel) String() string {
	return level.string()
}
