package flags

import (
	"github.com/spf13/pflag"
)

// MarkHidden marks the specified flag as hidden from the provided flag set
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err)
	}
}
