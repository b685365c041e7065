package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/internal/config"
	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// itemFieldNames contains the keys accepted by --item-field.
var itemFieldNames = []string{"guid", "name", "type", "url", "description", "thumb", "fanart", "live", "geolocked", "drm", "paid"}

// completeActions provides shell completion for --action, including
// actions declared in mediaurl.yaml.
func completeActions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	sch := schema.Default()
	configDir, _ := cmd.Flags().GetString("config")
	if cfg, err := config.LoadOrDefault(configDir); err == nil {
		if merged, err := cfg.Schema(sch); err == nil {
			sch = merged
		}
	}

	return filterPrefix(sch.Actions(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// itemTypes contains the values offered for --item-field type=.
var itemTypes = []string{mediaurl.ItemTypeFolder, mediaurl.ItemTypeVideo, mediaurl.ItemTypeAudio, mediaurl.ItemTypePage}

// completeItemFields provides shell completion for --item-field keys and
// for the values of type=.
func completeItemFields(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.HasPrefix(toComplete, "type=") {
		values := make([]string, len(itemTypes))
		for i, t := range itemTypes {
			values[i] = "type=" + t
		}
		return filterPrefix(values, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	if strings.Contains(toComplete, "=") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := make([]string, len(itemFieldNames))
	for i, name := range itemFieldNames {
		keys[i] = name + "="
	}
	return filterPrefix(keys, toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

func filterPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
