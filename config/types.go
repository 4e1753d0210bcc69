package config

// AgencyConfig contains the agency identity
type AgencyConfig struct {
	Name      string `yaml:"name" validate:"required"`
	Color     string `yaml:"color" validate:"required,len=6,excludesall=xX,hexadecimal"`
	RouteType int    `yaml:"routeType" validate:"gte=0,lte=12"`
}

// StopNamesConfig contains stop name cleanup settings
type StopNamesConfig struct {
	// UpperCaseWords always render fully upper-case (e.g. BC)
	UpperCaseWords []string `yaml:"upperCaseWords" validate:"dive,required,alpha"`
}

// HeadsignsConfig contains trip headsign settings
type HeadsignsConfig struct {
	NonDescriptiveRouteIDs []int64 `yaml:"nonDescriptiveRouteIDs" validate:"dive,gt=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Agency    AgencyConfig    `yaml:"agency" validate:"required"`
	StopNames StopNamesConfig `yaml:"stopNames"`
	Headsigns HeadsignsConfig `yaml:"headsigns"`
}
