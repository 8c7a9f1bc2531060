package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
// Values read from the file are applied to the group data directly, so options given on the command
// line after the configuration file take precedence.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or a yaml decoding error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Tell the decoder where the file lives, so that references to other files are resolved relative to it
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream (a reader) and parses YAML segments one after another, using the provided
// decode options. This allows you to have multiple individual YAML segments within one physical file /
// input stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode segment %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment will get the "segment" from our input stream and try to match it key = name to our parameter
// groups or commands. E.g. -- top level yaml line "codec:" will be matched to a group named "codec" (case does
// not matter). If you don't have any groups, the parser will fail.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {

		// Find the group / command this key belongs to
		var group *flags.Group
		if command := y.parser.Find(name); command != nil {
			group = command.Group
		} else {
			group = findGroup(y.parser.Groups(), name)
		}
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option group or command '%s'", name),
			})
		}

		log.Tracef("Applying configuration section '%s'", name)

		// We need to complicate things a bit here, as the flags library does not allow direct access to
		// the underlying data structure. It's not really a nice way to do it, but currently there's no
		// other way to implement this.
		dereferencedGroup := reflect.Indirect(reflect.ValueOf(group))
		dataField := dereferencedGroup.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		dataFieldPtr := dataField.Elem() // ptr / *CodecOptions

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, dataFieldPtr.Interface()); err != nil {
			return errors.Wrapf(err, "Could not apply configuration section '%s'", name)
		}
	}
	return nil
}

// findGroup searches the group tree for a group with the given short description
func findGroup(groups []*flags.Group, name string) *flags.Group {
	for _, g := range groups {
		if strings.EqualFold(g.ShortDescription, name) {
			return g
		}
		if found := findGroup(g.Groups(), name); found != nil {
			return found
		}
	}
	return nil
}
