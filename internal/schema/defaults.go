package schema

import "github.com/vvka-141/mediaurl/pkg/mediaurl"

// Default returns the built-in action table.
//
// Entries keep their historical positional form, so the trailing field of
// every action is optional.
func Default() *Schema {
	const (
		channel     = mediaurl.ParamChannel
		channelCode = mediaurl.ParamChannelCode
		pickle      = mediaurl.ParamPickle
		category    = mediaurl.ParamCategory
	)

	return MustNew(map[string][]Field{
		mediaurl.ActionListFolder:        Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionPlayVideo:         Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionDownloadVideo:     Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionAddFavourite:      Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionRemoveFavourite:   Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionChannelFavourites: Positional(At(channel, 0), At(channelCode, 1), At(pickle, 2)),
		mediaurl.ActionConfigureChannel:  Positional(At(channel, 0), At(channelCode, 1)),
		mediaurl.ActionSetEncryptionPin:  Positional(At(channel, 0), At(channelCode, 1)),
		mediaurl.ActionSetInputStream:    Positional(At(channel, 0), At(channelCode, 1)),
		mediaurl.ActionListCategory:      Positional(At(category, 0)),
		mediaurl.ActionAllFavourites:     Positional(At(channel, -1), At(channelCode, -1)),
		mediaurl.ActionResetVault:        Positional(At(channel, -1)),
	})
}
