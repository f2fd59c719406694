// Package plugins registers all built-in plugins.
package plugins

import (
	"firestige.xyz/gensource/pkg/sdk"
	"firestige.xyz/gensource/plugins/source/randomgen"
)

func init() {
	// Register source plugins
	sdk.Register(randomgen.Name, randomgen.New)
}
