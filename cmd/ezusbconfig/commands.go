package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/midiman/go-ezusb/hwconfig"
	"github.com/midiman/go-ezusb/ihex"
)

// listing is the YAML form of a configuration.
type listing struct {
	HexLoader string            `yaml:"hex_loader"`
	Devices   []hwconfig.Record `yaml:"devices"`
}

func (env *environment) load() (*hwconfig.Config, bool) {
	cfg, err := hwconfig.Load(env.configPath, hwconfig.WithLogger(env.log))
	if err != nil {
		fmt.Fprintf(env.stderr, "error: %v\n", err)
		return nil, false
	}
	return cfg, true
}

func runCheck(env *environment, _ []string) int {
	err := hwconfig.Check(env.configPath, hwconfig.WithLogger(env.log))
	if err == nil {
		fmt.Fprintf(env.stdout, "%s: ok\n", env.configPath)
		return exitOK
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		fmt.Fprintf(env.stdout, "%s: %v\n", env.configPath, err)
		return exitFailure
	}

	fmt.Fprintf(env.stdout, "%s: %d problem(s)\n", env.configPath, len(merr.Errors))
	for _, problem := range merr.Errors {
		fmt.Fprintf(env.stdout, "  * %v\n", problem)
	}
	return exitFailure
}

func runList(env *environment, _ []string) int {
	cfg, ok := env.load()
	if !ok {
		return exitFailure
	}

	if env.output == "yaml" {
		return env.printYAML(listing{
			HexLoader: cfg.HexLoaderPath(),
			Devices:   cfg.Devices(),
		})
	}

	fmt.Fprintf(env.stdout, "hex loader: %s\n", cfg.HexLoaderPath())
	fmt.Fprintf(env.stdout, "%-8s %-8s %-32s %s\n", "COLD", "WARM", "DEVICE", "FIRMWARE")
	for _, rec := range cfg.Devices() {
		fmt.Fprintf(env.stdout, "%-8s %-8s %-32s %s\n",
			rec.ColdBootProductID, rec.WarmFirmwareProductID, rec.ModelName, rec.FirmwareFileName)
	}
	return exitOK
}

func runLookup(env *environment, args []string) int {
	id, err := hwconfig.ParseProductID(args[0])
	if err != nil {
		fmt.Fprintf(env.stderr, "error: %v\n", err)
		return exitUsage
	}

	cfg, ok := env.load()
	if !ok {
		return exitFailure
	}

	rec, found := cfg.FirmwareForBootID(id)
	if !found {
		if warm, isWarm := cfg.FirmwareForWarmID(id); isWarm {
			fmt.Fprintf(env.stdout, "%s is already running %s firmware\n", id, warm.ModelName)
			return exitOK
		}
		fmt.Fprintf(env.stderr, "no firmware for cold-boot product id %s\n", id)
		return exitFailure
	}

	if env.output == "yaml" {
		return env.printYAML(rec)
	}

	fmt.Fprintf(env.stdout, "device:     %s\n", rec.ModelName)
	fmt.Fprintf(env.stdout, "firmware:   %s\n", rec.FirmwareFileName)
	fmt.Fprintf(env.stdout, "hex loader: %s\n", cfg.HexLoaderPath())
	fmt.Fprintf(env.stdout, "cold boot:  %s\n", rec.ColdBootProductID)
	fmt.Fprintf(env.stdout, "warm:       %s\n", rec.WarmFirmwareProductID)
	return exitOK
}

func runVerify(env *environment, _ []string) int {
	cfg, ok := env.load()
	if !ok {
		return exitFailure
	}

	dir := env.firmwareDir
	if dir == "" {
		dir = filepath.Dir(env.configPath)
	}
	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(dir, path)
	}

	var errs *multierror.Error
	verify := func(label, path string) {
		img, err := ihex.Parse(resolve(path))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s (%s): %w", label, path, err))
			return
		}
		env.log.WithField("file", path).Debug("parsed firmware image")
		fmt.Fprintf(env.stdout, "ok   %-32s %s: %d bytes in %d segment(s)\n",
			label, path, img.Size(), len(img.Segments()))
	}

	verify("hex loader", cfg.HexLoaderPath())
	for _, rec := range cfg.Devices() {
		verify(rec.ModelName, rec.FirmwareFileName)
	}

	if err := errs.ErrorOrNil(); err != nil {
		for _, problem := range errs.Errors {
			fmt.Fprintf(env.stdout, "FAIL %v\n", problem)
		}
		return exitFailure
	}
	return exitOK
}

func (env *environment) printYAML(v interface{}) int {
	enc := yaml.NewEncoder(env.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(env.stderr, "error: %v\n", err)
		return exitFailure
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(env.stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}
