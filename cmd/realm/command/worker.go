package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-realm/internal/commands"
	"github.com/pixil98/go-realm/internal/driver"
	"github.com/pixil98/go-realm/internal/listener"
	"github.com/pixil98/go-realm/internal/messaging"
	"github.com/pixil98/go-realm/internal/player"
	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world
	store, err := cfg.Storage.BuildWorldStore()
	if err != nil {
		return nil, fmt.Errorf("creating world store: %w", err)
	}
	err = cfg.World.EnsureDefaultRoom(store)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping default room: %w", err)
	}

	// Setup messaging
	nats, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	broadcaster := messaging.NewRoomBroadcaster(nats, store)

	// Command handling and player sessions
	handler := commands.NewHandler(store, broadcaster, cfg.World.DefaultRoom)
	pm := player.NewManager(handler, nats)
	cm := listener.NewConnectionManager(pm)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Periodic world integrity sweep
	var driverOpts []driver.DriverOpt
	if cfg.SweepInterval != "" {
		d, err := time.ParseDuration(cfg.SweepInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing sweep_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}
	drv := driver.NewDriver([]driver.Manager{
		storage.NewIntegritySweeper(store),
	}, driverOpts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      nats,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}
