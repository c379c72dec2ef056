package alpm

import (
	"github.com/pamac-go/alpmutil/lib/errors"
	"github.com/pamac-go/alpmutil/lib/log/nulllogger"
)

func newHandle(params Params) (*Handle, error) {
	if params.RootDir == "" {
		return nil, errors.NewInvalidArgumentError("RootDir", "empty")
	}
	if params.DBPath == "" {
		return nil, errors.NewInvalidArgumentError("DBPath", "empty")
	}
	h := &Handle{
		params: params,
		logger: params.Logger,
	}
	if h.logger == nil {
		h.logger = nulllogger.New()
	}
	if params.Keyring != nil {
		h.keyring = params.Keyring
		h.keyringLoaded = true
	}
	return h, nil
}

func (h *Handle) registerSyncDB(name string, level SigLevel) *SyncDB {
	for _, db := range h.syncDBs {
		if db.Name == name {
			return db
		}
	}
	if level&SigUseDefault != 0 {
		level = h.params.SigLevel
	}
	db := &SyncDB{Name: name, SigLevel: level}
	h.syncDBs = append(h.syncDBs, db)
	return db
}
