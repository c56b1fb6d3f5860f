package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forestrie/go-storagekey/scale"
	"github.com/forestrie/go-storagekey/statestore"
	"github.com/forestrie/go-storagekey/storagekey"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func runKey(env *environment, args []string) error {
	var kf keyFlags
	fs := env.flagSet("key")
	kf.addFlags(fs)
	if err := env.parse(fs, args); err != nil {
		return err
	}
	key, err := buildKey(kf, env.cfg.CodecOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, key.Hex())
	return nil
}

// buildKey encodes typed parameters with opts, the same options the command
// uses for the value.
func buildKey(kf keyFlags, opts ...scale.Option) (storagekey.Key, error) {
	r, err := kf.request()
	if err != nil {
		return nil, err
	}
	return r.Build(opts...)
}

// decodeFlags override the configured codec defaults.
type decodeFlags struct {
	typ        string
	full       bool
	optionBool string
}

func (d *decodeFlags) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&d.typ, "type", "t", "", "value type, for example u32, compact or Option<bool>")
	fs.BoolVar(&d.full, "full", false, "require the value to consume every input byte")
	fs.StringVar(&d.optionBool, "option-bool", "", "Option<bool> scheme, strict or compact")
}

func (d *decodeFlags) options(env *environment, fs *pflag.FlagSet) ([]scale.Option, error) {
	opts := env.cfg.CodecOptions()
	if fs.Changed("full") {
		if d.full {
			opts = append(opts, scale.WithFullConsumption())
		} else {
			opts = append(opts, withoutFullConsumption)
		}
	}
	if fs.Changed("option-bool") {
		scheme, err := scale.ParseOptionBoolScheme(d.optionBool)
		if err != nil {
			return nil, usageErrorf("%v", err)
		}
		opts = append(opts, scale.WithOptionBoolScheme(scheme))
	}
	return opts, nil
}

func withoutFullConsumption(o any) {
	if co, ok := o.(*scale.CodecOptions); ok {
		co.FullConsumption = false
	}
}

func (d *decodeFlags) valueType() (scale.Type, error) {
	if d.typ == "" {
		return scale.Type{}, usageErrorf("--type is required")
	}
	return scale.ParseType(d.typ)
}

func runDecode(env *environment, args []string) error {
	var df decodeFlags
	fs := env.flagSet("decode")
	df.addFlags(fs)
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageErrorf("decode takes one hex argument")
	}
	t, err := df.valueType()
	if err != nil {
		return err
	}
	opts, err := df.options(env, fs)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.TrimPrefix(fs.Arg(0), "0x"))
	if err != nil {
		return usageErrorf("bad hex: %v", err)
	}

	v, n, err := scale.Decode(data, t, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.stdout, "%s %s (%d bytes)\n", t, v, n)
	return nil
}

func runBatch(env *environment, args []string) error {
	var format string
	fs := env.flagSet("batch")
	fs.StringVar(&format, "format", "", "request file format, yaml or cbor (default from extension)")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageErrorf("batch takes one request file")
	}
	path := fs.Arg(0)
	if format == "" {
		format = "yaml"
		if filepath.Ext(path) == ".cbor" {
			format = "cbor"
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var requests []storagekey.Request
	switch format {
	case "yaml":
		requests, err = storagekey.LoadRequestsYAML(bytes.NewReader(data))
	case "cbor":
		requests, err = storagekey.UnmarshalRequestsCBOR(data)
	default:
		return usageErrorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	runID := uuid.New()
	env.log.Infof("batch %s: %d requests from %s", runID, len(requests), path)

	failed := 0
	opts := env.cfg.CodecOptions()
	for i, r := range requests {
		key, err := r.Build(opts...)
		if err != nil {
			failed++
			fmt.Fprintf(env.stdout, "%d %s %s error: %v\n", i, r.Namespace, r.Item, err)
			continue
		}
		fmt.Fprintf(env.stdout, "%d %s %s %s\n", i, r.Namespace, r.Item, key.Hex())
	}
	env.log.Infof("batch %s: %d of %d failed", runID, failed, len(requests))
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(requests))
	}
	return nil
}

func openSnapshot(env *environment, path string, readOnly bool) (*statestore.Snapshot, error) {
	if path == "" {
		path = env.cfg.Snapshot.Path
	}
	if path == "" {
		return nil, usageErrorf("no snapshot path, set --snapshot or snapshot.path")
	}
	opts := env.cfg.SnapshotOptions()
	if readOnly {
		opts = append(opts, statestore.WithReadOnly())
	}
	return statestore.Open(env.log, path, opts...)
}

func runPut(env *environment, args []string) error {
	var kf keyFlags
	var df decodeFlags
	var snapshot, value string
	fs := env.flagSet("put")
	kf.addFlags(fs)
	df.addFlags(fs)
	fs.StringVar(&snapshot, "snapshot", "", "snapshot file (default snapshot.path)")
	fs.StringVar(&value, "value", "", "value text, encoded as --type")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	t, err := df.valueType()
	if err != nil {
		return err
	}
	opts, err := df.options(env, fs)
	if err != nil {
		return err
	}
	v, err := scale.ParseValue(t, value)
	if err != nil {
		return err
	}
	encoded, err := scale.Encode(v, opts...)
	if err != nil {
		return err
	}
	key, err := buildKey(kf, opts...)
	if err != nil {
		return err
	}

	s, err := openSnapshot(env, snapshot, false)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Put(context.Background(), key, encoded); err != nil {
		return err
	}
	fmt.Fprintf(env.stdout, "%s %x\n", key.Hex(), encoded)
	return nil
}

func runGet(env *environment, args []string) error {
	var kf keyFlags
	var df decodeFlags
	var snapshot string
	fs := env.flagSet("get")
	kf.addFlags(fs)
	df.addFlags(fs)
	fs.StringVar(&snapshot, "snapshot", "", "snapshot file (default snapshot.path)")
	if err := env.parse(fs, args); err != nil {
		return err
	}
	t, err := df.valueType()
	if err != nil {
		return err
	}
	opts, err := df.options(env, fs)
	if err != nil {
		return err
	}
	key, err := buildKey(kf, opts...)
	if err != nil {
		return err
	}

	s, err := openSnapshot(env, snapshot, true)
	if err != nil {
		return err
	}
	defer s.Close()
	raw, err := s.Get(context.Background(), key)
	if err != nil {
		return err
	}
	v, _, err := scale.Decode(raw, t, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", key.Hex(), err)
	}
	fmt.Fprintf(env.stdout, "%s %s\n", key.Hex(), v)
	return nil
}
