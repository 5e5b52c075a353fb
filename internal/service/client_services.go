package service

import (
	"github.com/MKhiriev/go-day-keeper/internal/adapter"
	"github.com/MKhiriev/go-day-keeper/internal/config"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/internal/store"
)

// ClientServices groups every service the client UI depends on.
type ClientServices struct {
	Resolver NavigationResolver
	Entries  EntryService
	Prefs    PrefsService
	AppInfo  AppInfoService
}

// NewClientServices wires the full client service layer: the navigation
// resolver on top of the launch-gate adapter, and the journal services on top
// of the local storages.
func NewClientServices(cfg config.ClientConfig, storages *store.ClientStorages, logger *logger.Logger) (*ClientServices, error) {
	fetcher := adapter.NewLaunchGateClient(cfg.Gate, logger)
	prober := adapter.NewDestinationProber(cfg.Gate, logger)

	appInfoSvc, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		Resolver: NewNavigationResolver(fetcher, prober, logger),
		Entries:  NewEntryService(storages.EntryRepository),
		Prefs:    NewPrefsService(storages.PrefsRepository),
		AppInfo:  appInfoSvc,
	}, nil
}
