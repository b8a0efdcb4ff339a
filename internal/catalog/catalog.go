// Package catalog supplies the static make/model/year reference data used to
// populate the vehicle form dropdowns. The data is fixed at compile time and
// read-only, so it is safe for unsynchronized concurrent reads.
package catalog

import "encoding/json"

// Option is a single dropdown choice. It marshals to a two-element JSON
// array [value, label], the wire format the cascading-dropdown API uses.
type Option struct {
	Value string
	Label string
}

// MarshalJSON renders the option as [value, label].
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{o.Value, o.Label})
}

// UnmarshalJSON accepts the [value, label] pair form.
func (o *Option) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	o.Value, o.Label = pair[0], pair[1]
	return nil
}

func opts(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Value: l, Label: l}
	}
	return out
}

var makes = opts("Ford", "Toyota", "Honda", "Chevrolet", "BMW", "Acura")

var modelsByMake = map[string][]Option{
	"Ford":      opts("F-150", "Mustang", "Explorer", "Escape"),
	"Toyota":    opts("Camry", "Corolla", "RAV4", "Highlander"),
	"Honda":     opts("Civic", "Accord", "CR-V", "Pilot"),
	"Chevrolet": opts("Silverado", "Malibu", "Equinox", "Traverse"),
	"BMW":       opts("3 Series", "X5", "5 Series", "X3"),
	"Acura":     opts("TLX", "MDX", "RDX", "ILX"),
}

// noSelection is returned for a make the catalog does not know, instead of
// an error, so the model dropdown always has something to show.
var noSelection = opts("Unknown")

var years = opts("2020", "2019", "2018", "2017")

// Makes returns the fixed, ordered set of vehicle makes. Never empty.
func Makes() []Option {
	return clone(makes)
}

// Models returns the ordered models for a make. An unrecognized make yields
// the "Unknown" sentinel entry rather than an error.
func Models(make string) []Option {
	if m, ok := modelsByMake[make]; ok {
		return clone(m)
	}
	return clone(noSelection)
}

// Years returns the selectable model years. The result is currently the same
// four recent years for every make/model combination; the arguments are
// accepted for API shape only. Known limitation of the catalog data.
func Years(make, model string) []Option {
	_ = make
	_ = model
	return clone(years)
}

// HasMake reports whether the make is part of the catalog.
func HasMake(make string) bool {
	_, ok := modelsByMake[make]
	return ok
}

// clone keeps callers from mutating the shared static slices.
func clone(in []Option) []Option {
	out := make([]Option, len(in))
	copy(out, in)
	return out
}
