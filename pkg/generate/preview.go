package generate

import (
	"context"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
	"github.com/marioIncandeza/relay-settings/pkg/workbook"
)

// RelayWordBits pairs a relay with its extracted word bits
type RelayWordBits struct {
	Relay    types.Relay     `json:"relay" yaml:"relay"`
	WordBits []types.WordBit `json:"word_bits" yaml:"word_bits"`
}

// Preview extracts word bits without touching any template. ids limits the
// result to the named relays; empty means every relay.
func Preview(ctx context.Context, src workbook.Source, ref workbook.TableRef, opts wordbits.Options, ids []string) ([]RelayWordBits, error) {
	relays, settings, err := workbook.Load(ctx, src, ref)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []RelayWordBits
	found := make(map[string]bool, len(ids))
	for _, relay := range relays {
		if len(want) > 0 && !want[relay.Name()] {
			continue
		}
		found[relay.Name()] = true
		out = append(out, RelayWordBits{
			Relay:    relay,
			WordBits: wordbits.Extract(relay, settings, opts),
		})
	}
	for _, id := range ids {
		if !found[id] {
			return out, errors.Newf(errors.ErrNotFound, "relay %q not found in table %s", id, ref.ClassTable)
		}
	}
	return out, nil
}
