package fetcher

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed stations.yaml
var stationsFile []byte

type station struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type stationCatalogue struct {
	Stations []station `yaml:"stations"`
}

// referenceStations is the fixed list of major stations used when
// synthesising mock records.
var referenceStations []string

func init() {
	var catalogue stationCatalogue
	if err := yaml.Unmarshal(stationsFile, &catalogue); err != nil {
		panic(err)
	}

	for _, s := range catalogue.Stations {
		referenceStations = append(referenceStations, s.Name)
	}
}
