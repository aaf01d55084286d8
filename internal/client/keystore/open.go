package keystore

import (
	"context"
	"fmt"

	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

// Backend names accepted by Open.
const (
	BackendAuto   = "auto"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Open selects the store backing once at startup. With BackendAuto it probes
// the encrypted SQLite backing and falls back to the file backing, so the
// rest of the application never branches on platform capabilities.
func Open(ctx context.Context, backend, dir string, log logging.Logger) (Store, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(ctx, dir)
	case BackendFile:
		return OpenFile(dir)
	case BackendAuto:
		s, err := OpenSQLite(ctx, dir)
		if err != nil {
			log.Warn(ctx, "encrypted credential store unavailable, using file store", "error", err)
			return OpenFile(dir)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
