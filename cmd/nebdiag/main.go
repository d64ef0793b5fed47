// Command nebdiag runs the end-to-end diagnostic and recombination-line
// scenarios described in this module's spec against the bundled fixture
// atomic-data store, and prints a report.
//
// Grounded on the teacher's cmd/main.go: flag-driven entry point and
// fmt-printed report lines; the scenarios run in a fixed order and print
// through the fixed-decimal formatters of pkg/util.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"nebdiag/pkg/atomdata"
	"nebdiag/pkg/diagnostic"
	"nebdiag/pkg/emissivity"
	"nebdiag/pkg/population"
	"nebdiag/pkg/recomb"
	"nebdiag/pkg/util"
)

func main() {
	scenario := flag.String("scenario", "all", "scenario to run: temperature, density, populations, hei, cii, ciii, all")
	flag.Parse()

	store := atomdata.NewMemStore()

	run := func(name string, fn func() error) {
		if err := fn(); err != nil {
			log.Printf("%s: %v", name, err)
			os.Exit(1)
		}
	}

	switch *scenario {
	case "temperature":
		run("temperature", func() error { return runTemperature(store) })
	case "density":
		run("density", func() error { return runDensity(store) })
	case "populations":
		run("populations", func() error { return runPopulations(store) })
	case "hei":
		run("hei", func() error { return runHeI(store) })
	case "cii":
		run("cii", func() error { return runCII(store) })
	case "ciii":
		run("ciii", func() error { return runCIII(store) })
	default:
		run("temperature", func() error { return runTemperature(store) })
		run("density", func() error { return runDensity(store) })
		run("populations", func() error { return runPopulations(store) })
		run("hei", func() error { return runHeI(store) })
		run("cii", func() error { return runCII(store) })
		run("ciii", func() error { return runCIII(store) })
	}
}

func sIIModel(store atomdata.Store, upperSel, lowerSel string) (*diagnostic.Model, error) {
	el, err := store.ReadLevels(atomdata.IonSII, 5)
	if err != nil {
		return nil, err
	}
	om, err := store.ReadOmega(atomdata.IonSII)
	if err != nil {
		return nil, err
	}
	a, err := store.ReadAij(atomdata.IonSII)
	if err != nil {
		return nil, err
	}
	return &diagnostic.Model{
		Levels:     el,
		Omega:      om,
		A:          a,
		LevelCount: 5,
		Upper:      emissivity.ParseSelection(upperSel),
		Lower:      emissivity.ParseSelection(lowerSel),
	}, nil
}

func runTemperature(store atomdata.Store) error {
	m, err := sIIModel(store, "1,2,1,3/", "1,5/")
	if err != nil {
		return err
	}
	te, err := diagnostic.Temperature(10.753, 2550, m)
	if err != nil {
		return err
	}
	fmt.Printf("[S II] temperature diagnostic: Te = %s\n", util.FormatTemperature(te))
	return nil
}

func runDensity(store atomdata.Store) error {
	m, err := sIIModel(store, "1,2/", "1,3/")
	if err != nil {
		return err
	}
	ne, err := diagnostic.Density(1.506, 7000, m)
	if err != nil {
		return err
	}
	fmt.Printf("[S II] density diagnostic: Ne = %s\n", util.FormatDensity(ne))
	return nil
}

func runPopulations(store atomdata.Store) error {
	el, _ := store.ReadLevels(atomdata.IonSII, 5)
	om, _ := store.ReadOmega(atomdata.IonSII)
	a, _ := store.ReadAij(atomdata.IonSII)
	n, err := population.Solve(10000, 1000, el, om, a, 5)
	if err != nil {
		return err
	}
	fmt.Println("[S II] level populations at Te=10000K, Ne=1000 cm^-3:")
	sum := 0.0
	for i, v := range n {
		fmt.Printf("  n%d = %.6e\n", i+1, v)
		sum += v
	}
	fmt.Printf("  sum = %.10f\n", sum)
	return nil
}

func runHeI(store atomdata.Store) error {
	grids, err := store.ReadAeffHeIPorter(atomdata.IonHeI)
	if err != nil {
		return err
	}
	hbetaGrid, err := store.ReadAeffSH95(atomdata.IonHI)
	if err != nil {
		return err
	}
	hbeta, err := recomb.Hbeta(10000, 5000, hbetaGrid)
	if err != nil {
		return err
	}
	line, err := recomb.PorterHeI(10000, 5000, 10, grids)
	if err != nil {
		return err
	}
	abund, err := recomb.Abundance(hbeta.Value, line.Value, 2.104)
	if err != nil {
		return err
	}
	fmt.Printf("He I %s abundance N(He+)/N(H+) = %s\n", util.FormatWavelength(line.Wavelength), util.FormatAbundance(abund))
	return nil
}

func runCII(store atomdata.Store) error {
	table, err := store.ReadAeffCollection(atomdata.IonCII, false)
	if err != nil {
		return err
	}
	hbetaGrid, err := store.ReadAeffSH95(atomdata.IonHI)
	if err != nil {
		return err
	}
	hbeta, err := recomb.Hbeta(10000, 5000, hbetaGrid)
	if err != nil {
		return err
	}
	line, err := recomb.Collection(10000, 6151.43, table)
	if err != nil {
		return err
	}
	abund, err := recomb.Abundance(hbeta.Value, line.Value, 0.028)
	if err != nil {
		return err
	}
	fmt.Printf("C II %s abundance N(C++)/N(H+) = %s\n", util.FormatWavelength(line.Wavelength), util.FormatAbundance(abund))
	return nil
}

func runCIII(store atomdata.Store) error {
	table, err := store.ReadAeffPPB91(atomdata.IonCIII)
	if err != nil {
		return err
	}
	hbetaGrid, err := store.ReadAeffSH95(atomdata.IonHI)
	if err != nil {
		return err
	}
	hbeta, err := recomb.Hbeta(10000, 5000, hbetaGrid)
	if err != nil {
		return err
	}
	line, err := recomb.PPB91(10000, 4647.42, table)
	if err != nil {
		return err
	}
	abund, err := recomb.Abundance(hbeta.Value, line.Value, 0.107)
	if err != nil {
		return err
	}
	fmt.Printf("C III %s abundance N(C++)/N(H+) = %s\n", util.FormatWavelength(line.Wavelength), util.FormatAbundance(abund))
	return nil
}
