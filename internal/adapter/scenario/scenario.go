package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"ordenes_xpto/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScenario []byte

var (
	ErrMissingClient  = errors.New("scenario: client id and name are required")
	ErrMissingOrderID = errors.New("scenario: order id is required")
)

// Scenario describes one run of the demo flow.
type Scenario struct {
	Client         entities.Client       `yaml:"client"`
	Technicians    []entities.Technician `yaml:"technicians"`
	Service        ServiceYAML           `yaml:"service"`
	Order          OrderYAML             `yaml:"order"`
	StatusChanges  []string              `yaml:"status_changes"`
	PerformService bool                  `yaml:"perform_service"`
}

type ServiceYAML struct {
	Kind        string  `yaml:"kind"`
	ID          int     `yaml:"id"`
	Description string  `yaml:"description"`
	Cost        float64 `yaml:"cost"`
}

type OrderYAML struct {
	ID int `yaml:"id"`
}

// Load reads the scenario at path, or the embedded reference scenario when
// path is empty.
func Load(path string) (Scenario, error) {
	if path == "" {
		return Parse(defaultScenario)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func (sc Scenario) validate() error {
	if sc.Client.ID <= 0 || strings.TrimSpace(sc.Client.Name) == "" {
		return ErrMissingClient
	}
	if sc.Order.ID <= 0 {
		return ErrMissingOrderID
	}
	if _, err := entities.ParseServiceKind(strings.TrimSpace(sc.Service.Kind)); err != nil {
		return fmt.Errorf("scenario: service kind %q: %w", sc.Service.Kind, err)
	}
	return nil
}
