package args

type CallbackOption func(string) error

// GeneralOptions configure the program itself: logging, configuration file, version
type GeneralOptions struct {
	Verbose               []bool         `yaml:"verbose"            short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `yaml:"-"                  short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file"           short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string         `yaml:"log-format"         short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string         `yaml:"log-color"          short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp"           long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller"            long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
	Version               bool           `yaml:"-"                  short:"V" long:"version"                                        description:"Print the version and exit"`
}

// CodecOptions select what is converted and how
type CodecOptions struct {
	Encode bool `yaml:"-"    short:"e" long:"encode"                      description:"Encode: read raw bytes from src, write symbol text to dst"`
	Decode bool `yaml:"-"    short:"d" long:"decode"                      description:"Decode: read symbol text from src, write raw bytes to dst"`
	Base   *int `yaml:"base" short:"b" long:"base"   env:"BASE94_BASE"    description:"Base to use if not given as the last argument (2-94, default 94)"`
	Trim   bool `yaml:"trim" short:"t" long:"trim"   env:"BASE94_TRIM"    description:"Ignore whitespace surrounding the symbols when decoding"`

	Positional struct {
		Source      string `positional-arg-name:"src"  description:"Source file, '-' for stdin"`
		Destination string `positional-arg-name:"dst"  description:"Destination file, '-' for stdout"`
		Base        string `positional-arg-name:"base" description:"Base, overrides --base"`
	} `yaml:"-" positional-args:"yes"`
}

var General GeneralOptions

var Codec CodecOptions
