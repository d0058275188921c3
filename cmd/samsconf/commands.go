package main

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/samsconf/internal/samsconfig"
)

const (
	typeString = "string"
	typeInt    = "int"
	typeDouble = "double"
	typeBool   = "bool"

	formatText = "text"
	formatYAML = "yaml"
)

func printCheck(w io.Writer, store *samsconfig.Store) error {
	sleep, err := store.GetInt(samsconfig.KeySleepTime)
	if err != nil {
		return fmt.Errorf("%s: %w", samsconfig.KeySleepTime, err)
	}
	step, err := store.GetInt(samsconfig.KeyDaemonStep)
	if err != nil {
		return fmt.Errorf("%s: %w", samsconfig.KeyDaemonStep, err)
	}

	_, err = fmt.Fprintf(w, "ok: %s engine, %s=%d %s=%d\n",
		store.Engine(), samsconfig.KeySleepTime, sleep, samsconfig.KeyDaemonStep, step)
	return err
}

func printAttribute(w io.Writer, store *samsconfig.Store, name, typ string) error {
	var (
		value any
		err   error
	)
	switch typ {
	case typeInt:
		value, err = store.GetInt(name)
	case typeDouble:
		value, err = store.GetDouble(name)
	case typeBool:
		value, err = store.GetBool(name)
	default:
		value, err = store.GetString(name)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	_, err = fmt.Fprintln(w, value)
	return err
}

func printDump(w io.Writer, store *samsconfig.Store, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(store.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	}

	attrs := store.Snapshot()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, attrs[name]); err != nil {
			return err
		}
	}
	return nil
}

func printEngine(w io.Writer, store *samsconfig.Store) error {
	_, err := fmt.Fprintln(w, store.Engine())
	return err
}
