// Package frontmatter reads the YAML header of Markdown configuration files
// such as commands, agents, and SKILL.md.
//
// A header is delimited by lines containing only "---" and must start on the
// first line. Files without a header are valid and carry no metadata.
package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/woicw/wr-ai/pkg/fileutil"
)

const delimiter = "---"

// ErrUnterminated is returned when the opening delimiter has no closing one.
var ErrUnterminated = errors.New("frontmatter is not terminated")

// Meta holds the header fields wr-ai displays.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseHeader decodes the header from r into matter and stops reading at the
// closing delimiter. Input without a header leaves matter untouched.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), fileutil.MaxFileSize)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff")) != delimiter {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == delimiter {
			if err := yaml.Unmarshal(buf.Bytes(), matter); err != nil {
				return errors.Wrap(err, "decoding frontmatter")
			}
			return nil
		}
		buf.WriteString(strings.TrimSuffix(line, "\r"))
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading frontmatter")
	}
	return ErrUnterminated
}

// Parse splits content into its decoded header and body. Content without a
// header is returned whole as the body.
func Parse[T any](content []byte, matter *T) ([]byte, error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	rest, ok := bytes.CutPrefix(normalized, []byte(delimiter+"\n"))
	if !ok {
		return content, nil
	}

	header, body, found := bytes.Cut(rest, []byte("\n"+delimiter))
	if !found {
		if bytes.HasPrefix(rest, []byte(delimiter)) {
			header, body = nil, rest[len(delimiter):]
		} else {
			return nil, ErrUnterminated
		}
	}
	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Wrap(err, "decoding frontmatter")
	}
	body = bytes.TrimPrefix(body, []byte("\n"))
	return body, nil
}

// ReadMeta returns the header of the Markdown file at path.
func ReadMeta(path string) (Meta, error) {
	var m Meta
	f, err := os.Open(path)
	if err != nil {
		return m, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	if err := ParseHeader(io.LimitReader(f, fileutil.MaxFileSize), &m); err != nil {
		return Meta{}, errors.Wrapf(err, "parsing %s", path)
	}
	return m, nil
}
