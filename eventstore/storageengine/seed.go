package storageengine

import (
	"context"
	"os"
	"time"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

const (
	logMsgAlreadySeeded   = "storage slot already populated, skipping seed"
	logMsgNoSeedSource    = "no seed source configured, starting empty"
	logMsgSeedUnavailable = "seed source unavailable, starting empty"
	logMsgSeedMalformed   = "seed document malformed, starting empty"
	logMsgSeeded          = "storage slot seeded from default dataset"
	logAttrSeedSource     = "seed_source"
	logAttrSeedVersion    = "seed_version"
)

// SeedDocument is the shape of the bundled seed dataset.
type SeedDocument struct {
	Events    eventstore.EventRecords `json:"events"`
	Version   string                  `json:"version"`
	CreatedAt time.Time               `json:"createdAt"`
}

// SeedIfEmpty populates the storage slot from the configured seed document
// when nothing has been persisted yet. The seed events are stored verbatim.
//
// An unreachable or malformed seed source is not an error: the condition is
// logged and the collection simply starts empty. Only storage failures are
// returned.
func (e Engine) SeedIfEmpty(ctx context.Context) error {
	_, found, err := e.kv.Get(ctx, e.storageKey)
	if err != nil {
		return err
	}

	if found {
		e.logDebug(logMsgAlreadySeeded, logAttrStorageKey, e.storageKey)
		return nil
	}

	if e.seedSource == "" {
		e.logDebug(logMsgNoSeedSource)
		return nil
	}

	raw, readErr := os.ReadFile(e.seedSource)
	if readErr != nil {
		e.logWarn(logMsgSeedUnavailable, logAttrError, readErr.Error(), logAttrSeedSource, e.seedSource)
		return nil
	}

	var doc SeedDocument
	if unmarshalErr := json.Unmarshal(raw, &doc); unmarshalErr != nil {
		e.logWarn(logMsgSeedMalformed, logAttrError, unmarshalErr.Error(), logAttrSeedSource, e.seedSource)
		return nil
	}

	if len(doc.Events) == 0 {
		e.logWarn(logMsgSeedMalformed, logAttrSeedSource, e.seedSource)
		return nil
	}

	if saveErr := e.Save(ctx, doc.Events); saveErr != nil {
		return saveErr
	}

	e.logInfo(logMsgSeeded,
		logAttrSeedVersion, doc.Version,
		logAttrEventCount, len(doc.Events))

	return nil
}
