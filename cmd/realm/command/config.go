package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	SweepInterval string           `json:"sweep_interval"`
	Listeners     []ListenerConfig `json:"listeners"`
	Storage       StorageConfig    `json:"storage"`
	Nats          NatsConfig       `json:"nats"`
	World         WorldConfig      `json:"world"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.SweepInterval != "" {
		d, err := time.ParseDuration(c.SweepInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing sweep_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("sweep_interval must be at least 1 second"))
		}
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.World.validate())

	return el.Err()
}
