package hubsync

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/samber/lo"

	"github.com/diwise/iot-edge-sync/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-edge-sync/pkg/types"
)

// BuildSnapshot assembles the full exportable catalog. Devices that were
// themselves synced in from an edge are excluded so an edge never pulls
// back data it pushed up.
func (s *service) BuildSnapshot(ctx context.Context) (types.Snapshot, error) {
	templates, err := s.store.GetTemplates(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}

	devices, err := s.store.GetDevices(ctx, false)
	if err != nil {
		return types.Snapshot{}, err
	}

	devices = lo.Filter(devices, func(d types.Device, _ int) bool {
		return !d.SyncedFromEdge
	})

	return types.Snapshot{Templates: templates, Devices: devices}, nil
}

// CatalogHash folds the per table (count, max updated at) signatures into a
// single hex digest. Any catalog mutation moves at least one signature and
// therefore the hash.
func (s *service) CatalogHash(ctx context.Context) (string, error) {
	signatures, err := s.store.CatalogSignatures(ctx)
	if err != nil {
		return "", err
	}

	return hashSignatures(signatures), nil
}

func hashSignatures(signatures []storage.TableSignature) string {
	hasher := sha256.New()
	buf := make([]byte, 8)

	for _, sig := range signatures {
		binary.LittleEndian.PutUint32(buf[:4], uint32(len(sig.TableName)))
		hasher.Write(buf[:4])
		hasher.Write([]byte(sig.TableName))

		binary.LittleEndian.PutUint64(buf, uint64(sig.Count))
		hasher.Write(buf)

		binary.LittleEndian.PutUint64(buf, uint64(sig.MaxUpdatedAt))
		hasher.Write(buf)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
