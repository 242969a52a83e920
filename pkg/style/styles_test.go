package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/rdb"
)

func TestFormatError(t *testing.T) {
	t.Run("coded error leads with its code", func(t *testing.T) {
		err := errors.Wrap(fmt.Errorf("disk full"), errors.ErrTemplateWrite, "cannot write SET_1.txt")
		out := FormatError(err)
		assert.Contains(t, out, "TEMPLATE_WRITE")
		assert.Contains(t, out, "cannot write SET_1.txt: disk full")
	})

	t.Run("plain error", func(t *testing.T) {
		out := FormatError(fmt.Errorf("boom"))
		assert.Contains(t, out, "Error")
		assert.Contains(t, out, "boom")
	})
}

func TestOutcomeStyle(t *testing.T) {
	for _, o := range []rdb.Outcome{rdb.Matched, rdb.Cleared, rdb.Unmatched} {
		assert.NotNil(t, OutcomeStyle(o), o.String())
	}
}
