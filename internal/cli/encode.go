package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/internal/params"
	"github.com/vvka-141/mediaurl/internal/query"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

type encodeFlags struct {
	action      string
	channel     string
	channelCode string
	category    string
	itemFields  []string
}

func newEncodeCmd() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a plugin URL for an action",
		Long: `Build a plugin URL for an action.

A media item is described with repeated --item-field flags. Known fields:
guid, name, type, url, description, thumb, fanart, live, geolocked, drm, paid.
An item without a guid gets a fresh one.`,
		Example: `  mediaurl encode --action listfolder --channel chn_nos --channel-code uzgjson \
    --item-field name=Journaal --item-field url=https://example.com/journaal

  mediaurl encode --action playvideo --channel chn_nos \
    --item-field name=Live --item-field type=video --item-field live=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.action, "action", "a", "", "Action to invoke (required)")
	cmd.Flags().StringVar(&flags.channel, "channel", "", "Channel module name")
	cmd.Flags().StringVar(&flags.channelCode, "channel-code", "", "Channel code (requires --channel)")
	cmd.Flags().StringVar(&flags.category, "category", "", "Category to list")
	cmd.Flags().StringArrayVar(&flags.itemFields, "item-field", nil, "Media item field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("action")
	_ = cmd.RegisterFlagCompletionFunc("action", completeActions)
	_ = cmd.RegisterFlagCompletionFunc("item-field", completeItemFields)

	return cmd
}

func runEncode(cmd *cobra.Command, flags encodeFlags) error {
	if flags.channelCode != "" && flags.channel == "" {
		return fmt.Errorf("%w: --channel-code requires --channel", mediaurl.ErrUsage)
	}

	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	req := query.EncodeRequest{
		Action:   flags.action,
		Category: flags.category,
	}
	if flags.channel != "" {
		req.Channel = &mediaurl.Channel{Module: flags.channel, Code: flags.channelCode}
	}
	if len(flags.itemFields) > 0 {
		fields, err := params.ParseKeyValuePairs(flags.itemFields)
		if err != nil {
			return err
		}
		req.Item, err = itemFromFields(fields)
		if err != nil {
			return err
		}
		env.logger.Verbose("Item: %s", req.Item)
	}

	if _, ok := env.schema.Lookup(flags.action); !ok {
		env.logger.Error("Action %q has no schema; the URL will not decode", flags.action)
	}

	url, err := env.codec.Encode(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

// itemFromFields builds a media item from --item-field values.
func itemFromFields(fields map[string]string) (*mediaurl.MediaItem, error) {
	item := &mediaurl.MediaItem{Type: mediaurl.ItemTypeFolder}

	for key, value := range fields {
		var err error
		switch key {
		case "guid":
			item.GUID = value
		case "name":
			item.Name = value
		case "type":
			item.Type = value
		case "url":
			item.URL = value
		case "description":
			item.Description = value
		case "thumb":
			item.Thumb = value
		case "fanart":
			item.Fanart = value
		case "live":
			item.IsLive, err = strconv.ParseBool(value)
		case "geolocked":
			item.IsGeoLocked, err = strconv.ParseBool(value)
		case "drm":
			item.IsDrmProtected, err = strconv.ParseBool(value)
		case "paid":
			item.IsPaid, err = strconv.ParseBool(value)
		default:
			return nil, fmt.Errorf("%w: unknown item field %q", mediaurl.ErrUsage, key)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: item field %q: %v", mediaurl.ErrUsage, key, err)
		}
	}

	if item.GUID == "" {
		item.GUID = mediaurl.NewGUID()
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", mediaurl.ErrUsage, err)
	}
	return item, nil
}
