package main

import (
	"encoding/hex"

	"github.com/joshuapare/hivedigger/hive/lookup"
)

// valueOutput is the JSON shape of an extracted value.
type valueOutput struct {
	Path    string `json:"path"`
	Value   string `json:"value"`
	Type    string `json:"type"`
	Storage string `json:"storage"`
	Size    int    `json:"size"`
	Hex     string `json:"hex"`
}

// extract runs a lookup against the hive at hivePath and prints the value.
func extract(hivePath string, path []string, value string) error {
	f, err := openHive(hivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := lookup.Lookup(f, path, value, lookupOptions())
	if err != nil {
		return err
	}

	out := valueOutput{
		Path:    lookup.JoinPath(path),
		Value:   res.Value.Name,
		Type:    res.Value.RegType().String(),
		Storage: res.Storage.String(),
		Size:    len(res.Data),
		Hex:     hex.EncodeToString(res.Data),
	}
	if jsonOut {
		return printJSON(out)
	}

	printVerbose("Key: %s (nk at %#x)\n", out.Path, res.Key.Offset)
	printVerbose("Value: %s %s, %d bytes, %s (vk at %#x)\n",
		displayName(out.Value), out.Type, out.Size, out.Storage, res.Value.Offset)
	printResult("%s\n", out.Hex)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}
