// Package templateinfo reads the descriptive [INFO] section a template
// directory carries in Misc/Cfg.txt.
package templateinfo

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

// ConfigFile is the template file holding the [INFO] section, relative to
// the template root
var ConfigFile = filepath.Join("Misc", "Cfg.txt")

const infoSection = "[INFO]"

// Info is the key=value content of the [INFO] section
type Info map[string]string

// Keys returns the keys in sorted order
func (i Info) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Read parses the [INFO] section of the template's Misc/Cfg.txt. A missing
// file yields an empty Info and no error.
func Read(fs afero.Fs, templateDir string) (Info, error) {
	info := Info{}
	path := filepath.Join(templateDir, ConfigFile)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "cannot read %s", path)
	}
	info, err = Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "cannot parse %s", path)
	}
	return info, nil
}

// Parse extracts the [INFO] key=value pairs. Keys and values are trimmed;
// any other section header ends the [INFO] section. A line longer than
// bufio.MaxScanTokenSize is an error.
func Parse(data []byte) (Info, error) {
	info := Info{}
	inInfo := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == infoSection {
			inInfo = true
			continue
		}
		if strings.HasPrefix(line, "[") {
			inInfo = false
		}
		if !inInfo {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		info[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return info, nil
}
