package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultAgencyName  = "Cowichan Valley Regional TS"
	defaultAgencyColor = "34B233" // green, corporate graphic standards
	routeTypeBus       = 3
)

// Config is the global application configuration
var Config = Default()

// Default returns the built-in agency configuration
func Default() AppConfig {
	return AppConfig{
		Agency: AgencyConfig{
			Name:      defaultAgencyName,
			Color:     defaultAgencyColor,
			RouteType: routeTypeBus,
		},
		StopNames: StopNamesConfig{UpperCaseWords: []string{"BC"}},
		Headsigns: HeadsignsConfig{NonDescriptiveRouteIDs: []int64{9, 34}},
	}
}

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./cowichan/config.yml"}
	var err error
	for _, p := range paths {
		var cfg AppConfig
		cfg, err = LoadAppConfigFrom(p)
		if err == nil {
			Config = cfg
			return nil
		}
		if !os.IsNotExist(err) {
			return err
		}
	}
	return err
}

// LoadAppConfigFrom loads and validates the configuration stored at path
func LoadAppConfigFrom(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return AppConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("loaded agency config %q from %s", cfg.Agency.Name, path)
	return cfg, nil
}

// Parse decodes YAML, fills defaults for omitted sections and validates the result
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	def := Default()
	if cfg.Agency.Name == "" {
		cfg.Agency.Name = def.Agency.Name
	}
	if cfg.Agency.Color == "" {
		cfg.Agency.Color = def.Agency.Color
	}
	if cfg.Agency.RouteType == 0 {
		cfg.Agency.RouteType = def.Agency.RouteType
	}
	// nil means omitted; an explicit empty list disables the allow-list
	if cfg.StopNames.UpperCaseWords == nil {
		cfg.StopNames.UpperCaseWords = def.StopNames.UpperCaseWords
	}
	if cfg.Headsigns.NonDescriptiveRouteIDs == nil {
		cfg.Headsigns.NonDescriptiveRouteIDs = def.Headsigns.NonDescriptiveRouteIDs
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
