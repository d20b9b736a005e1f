package cmd

import (
	"github.com/sirupsen/logrus"

	sim "github.com/rich-aroma/opening-sim/sim"
)

// LoadMenu loads the YAML menu at path, substituting the built-in fallback
// menu when loading fails so a simulation can always proceed. The failure
// is surfaced to the operator as a warning.
func LoadMenu(path string) *sim.Catalog {
	catalog, err := sim.LoadCatalog(path)
	if err != nil {
		logrus.Warnf("Menu load failed (%v); using fallback menu.", err)
		return sim.FallbackCatalog()
	}
	logrus.Infof("Loaded menu with %d categories from %s", len(catalog.Categories), path)
	return catalog
}
