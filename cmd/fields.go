package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/gensource/pkg/sdk"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print registration metadata and declared fields of all plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range sdk.Names() {
			factory, err := sdk.Lookup(name)
			if err != nil {
				return err
			}
			p := factory()
			info := p.Info()

			caps := make([]string, 0, len(info.Capabilities))
			for _, c := range info.Capabilities {
				caps = append(caps, string(c))
			}
			fmt.Printf("%s %s (%s)\n", info.Name, info.Version, strings.Join(caps, ", "))
			fmt.Printf("  source:  %s\n", info.EventSource)
			fmt.Printf("  contact: %s\n", info.Contact)
			for _, f := range p.Fields() {
				fmt.Printf("  field:   %-10s %-6s %s\n", f.Name, f.Type, f.Description)
			}
			p.Destroy()
		}
		return nil
	},
}
