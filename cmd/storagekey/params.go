package main

import (
	"strings"

	"github.com/forestrie/go-storagekey/storagekey"
	"github.com/spf13/pflag"
)

// keyFlags are the flags naming a storage key.
type keyFlags struct {
	namespace string
	item      string
	params    []string
}

func (k *keyFlags) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&k.namespace, "namespace", "n", "", "storage namespace (pallet) name")
	fs.StringVarP(&k.item, "item", "i", "", "storage item name")
	fs.StringArrayVarP(&k.params, "param", "p", nil,
		"key parameter as hasher=type:value, hasher=0x<hex> or hasher= (repeatable, in order)")
}

func (k *keyFlags) request() (storagekey.Request, error) {
	r := storagekey.Request{Namespace: k.namespace, Item: k.item}
	for _, text := range k.params {
		rp, err := parseParam(text)
		if err != nil {
			return storagekey.Request{}, err
		}
		r.Params = append(r.Params, rp)
	}
	return r, nil
}

// parseParam reads one --param value. The value after '=' is hex when it has
// a 0x prefix, a typed value when it has a type and ':', and empty otherwise.
func parseParam(text string) (storagekey.RequestParam, error) {
	hasher, value, ok := strings.Cut(text, "=")
	if !ok || hasher == "" {
		return storagekey.RequestParam{}, usageErrorf("param %q: expected hasher=value", text)
	}
	rp := storagekey.RequestParam{Hasher: hasher}
	switch {
	case value == "":
	case strings.HasPrefix(value, "0x"):
		rp.Hex = value
	default:
		typ, v, ok := strings.Cut(value, ":")
		if !ok || typ == "" {
			return storagekey.RequestParam{}, usageErrorf("param %q: expected type:value or 0x<hex>", text)
		}
		rp.Type, rp.Value = typ, v
	}
	return rp, nil
}
