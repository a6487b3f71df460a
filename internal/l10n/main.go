// Package l10n translates user facing strings of the fmm tools.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

var domain gettext.TextDomain
var locale gettext.Catalog

func init() {
	domain = gettext.TextDomain{Name: "fmm"}
	locale = domain.UserLocale()
}

// T localizes simple strings. Without a catalogue for the user locale the
// string is returned untranslated.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
