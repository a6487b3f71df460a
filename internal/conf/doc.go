// Package conf defines the result output configuration of the map
// matching tools: the file the result is written to and the optional
// fields the writer emits for every matched trajectory.
//
// # Usage
//
// Build a ResultConfig from command line options:
//
//	app := &cli.App{Name: "fmm"}
//	conf.RegisterFlags(app)
//	app.Action = func(c *cli.Context) error {
//	    config, err := conf.LoadFromArgs(c)
//	    ...
//	}
//
// or from a document, optionally layered with drop-in documents:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/etc/fmm/config.xml",
//	    DropInDir: "/etc/fmm/config.xml.d",
//	}
//	config, err := cs.Read()
//
// A configuration must pass Validate before it is handed to a writer.
//
// # Output Fields
//
//	┌──────────┬─────────┬─────────────────────────────────────────────────┐
//	│ Field    │ Default │ Description                                     │
//	├──────────┼─────────┼─────────────────────────────────────────────────┤
//	│ opath    │ off     │ matched edge id per observed point              │
//	│ offset   │ off     │ distance from edge start to matched point       │
//	│ error    │ off     │ distance from raw point to matched point        │
//	│ cpath    │ on      │ edge ids forming the matched path               │
//	│ tpath    │ off     │ path traversed between consecutive observations │
//	│ mgeom    │ on      │ geometry of the matched path                    │
//	│ spdist   │ off     │ distance traveled between consecutive points    │
//	│ pgeom    │ off     │ linestring of matched points                    │
//	│ ep       │ off     │ emission probability per point                  │
//	│ tp       │ off     │ transition probability per point pair           │
//	│ length   │ off     │ length of each matched edge                     │
//	│ duration │ off     │ time delta between consecutive points           │
//	│ speed    │ off     │ spdist / duration                               │
//	└──────────┴─────────┴─────────────────────────────────────────────────┘
//
// A field list is a comma separated string of the names above; "all"
// enables every field. A list replaces the defaults rather than adding to
// them. Names outside the catalogue are rejected with ErrUnknownFieldName.
//
// # Document Formats
//
// The document format is chosen by file extension:
//
//   - .xml: <config><output><file/><fields/></output></config>; fields may
//     hold a list or empty child elements such as <cpath/>.
//   - .toml, .ini: an [output] section with file and fields keys.
//   - .yaml, .yml: an output mapping with file and fields keys.
//
// # Internal Architecture
//
//   - outputDTO: raw file and field list values with pointer fields, so a
//     drop-in document only overrides the keys it sets.
//
//   - newResultConfig: the one translation routine shared by the command
//     line and document loaders.
//
//   - ResultConfig: public value type. Validate reports every violated
//     rule; Valid logs them through slog.
package conf
