package rdb

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
	"github.com/marioIncandeza/relay-settings/pkg/filesystem"
	"github.com/marioIncandeza/relay-settings/pkg/logging"
	"github.com/marioIncandeza/relay-settings/pkg/textenc"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/wordbits"
)

// DefaultPattern selects template files when no pattern is configured
const DefaultPattern = "*.txt"

// Rewriter rewrites template files in place for one device family
type Rewriter struct {
	FS      afero.Fs
	Family  types.Family
	Pattern string
}

// FileResult counts the line outcomes of one file
type FileResult struct {
	Name      string `json:"name" yaml:"name"`
	Group     string `json:"group" yaml:"group"`
	Excluded  bool   `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Lines     int    `json:"lines" yaml:"lines"`
	Matched   int    `json:"matched" yaml:"matched"`
	Cleared   int    `json:"cleared" yaml:"cleared"`
	Unmatched int    `json:"unmatched" yaml:"unmatched"`
	Bytes     int64  `json:"bytes" yaml:"bytes"`
}

// Summary is the result of rewriting one directory
type Summary struct {
	Dir   string       `json:"dir" yaml:"dir"`
	Files []FileResult `json:"files" yaml:"files"`
}

// Totals sums the outcomes over all rewritten files
func (s Summary) Totals() (matched, cleared, unmatched int) {
	for _, f := range s.Files {
		matched += f.Matched
		cleared += f.Cleared
		unmatched += f.Unmatched
	}
	return
}

// Rewrite processes every template file directly inside dir. Files whose
// group is excluded are left untouched. The first read, encoding or write
// failure aborts the directory.
func (r *Rewriter) Rewrite(dir string, bits []types.WordBit, excluded []string) (Summary, error) {
	summary := Summary{Dir: dir}

	codec, err := textenc.LookupSingleByte(r.Family.Encoding)
	if err != nil {
		return summary, err
	}

	pattern := r.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	names, err := filesystem.ListFiles(r.FS, dir, pattern)
	if err != nil {
		return summary, err
	}

	lookup := wordbits.Lookup(bits)
	for _, name := range names {
		group := types.GroupFromFileName(name)
		if group.In(excluded) {
			logger := logging.GetLogger("rdb")
			logger.Debug().Str("file", name).Str("group", group.Name).Msg("Group excluded, leaving template copy")
			summary.Files = append(summary.Files, FileResult{Name: name, Group: group.Name, Excluded: true})
			continue
		}

		res, err := r.rewriteFile(filepath.Join(dir, name), group, lookup, codec)
		if err != nil {
			return summary, err
		}
		summary.Files = append(summary.Files, res)
	}
	return summary, nil
}

func (r *Rewriter) rewriteFile(path string, group types.FileGroup, lookup map[string]types.WordBit, codec textenc.Codec) (FileResult, error) {
	res := FileResult{Name: filepath.Base(path), Group: group.Name}

	info, err := r.FS.Stat(path)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrTemplateRead, "cannot stat %s", path)
	}
	raw, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrTemplateRead, "cannot read %s", path)
	}
	text, err := codec.Decode(raw)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrEncoding, "cannot decode %s", path)
	}

	results := Transform(SplitLines(text), group, lookup, r.Family)
	out := make([]Line, len(results))
	for i, lr := range results {
		out[i] = lr.Line
		switch lr.Outcome {
		case Matched:
			res.Matched++
		case Cleared:
			res.Cleared++
		default:
			res.Unmatched++
		}
	}
	res.Lines = len(results)

	data, err := codec.Encode(JoinLines(out))
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrEncoding, "cannot encode %s", path)
	}
	if err := afero.WriteFile(r.FS, path, data, info.Mode().Perm()); err != nil {
		return res, errors.Wrapf(err, errors.ErrTemplateWrite, "cannot write %s", path)
	}
	res.Bytes = int64(len(data))

	logger := logging.GetLogger("rdb")
	logger.Trace().
		Str("file", res.Name).
		Str("group", group.Name).
		Int("matched", res.Matched).
		Int("cleared", res.Cleared).
		Msg("Rewrote template file")
	return res, nil
}
