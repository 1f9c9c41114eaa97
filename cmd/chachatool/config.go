package main

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
)

// profileFile is the shape of a TOML config passed to `chachatool encrypt
// --config`, keyed by profile name so one file can hold several named
// key/nonce/variant combinations:
//
//	[profiles.dev]
//	variant = "chacha20"
//	key     = "000102...1f"
//	nonce   = "0001020304050607"
type profileFile struct {
	Profiles map[string]profile `toml:"profiles"`
}

type profile struct {
	Variant string `toml:"variant"`
	Key     string `toml:"key"`
	Nonce   string `toml:"nonce"`
}

// loadProfile reads path and returns the named profile's decoded key and
// nonce alongside its variant name.
func loadProfile(path, name string) (variant string, key, nonce []byte, err error) {
	var f profileFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return "", nil, nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	p, ok := f.Profiles[name]
	if !ok {
		return "", nil, nil, fmt.Errorf("config %s has no profile %q", path, name)
	}

	key, err = hex.DecodeString(p.Key)
	if err != nil {
		return "", nil, nil, fmt.Errorf("profile %s: decoding key: %w", name, err)
	}
	nonce, err = hex.DecodeString(p.Nonce)
	if err != nil {
		return "", nil, nil, fmt.Errorf("profile %s: decoding nonce: %w", name, err)
	}

	return p.Variant, key, nonce, nil
}
