package mediaurl

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitMalformedQuery = 20 // Query string could not be decoded
	ExitInvalidItem    = 21 // Pickled media item could not be decoded
	ExitStoreError     = 22 // Pickle store missing or unreadable
)

// Parameter names used in plugin query strings.
const (
	ParamAction      = "action"
	ParamChannel     = "channel"
	ParamChannelCode = "channelcode"
	ParamCategory    = "category"
	ParamPickle      = "pickle"
	ParamItem        = "item"
	ParamRandomLive  = "rnd"
)

// Actions understood by the plugin.
const (
	ActionListFolder        = "listfolder"
	ActionPlayVideo         = "playvideo"
	ActionListCategory      = "listcategory"
	ActionDownloadVideo     = "downloadvideo"
	ActionAddFavourite      = "addfavourite"
	ActionRemoveFavourite   = "removefavourite"
	ActionAllFavourites     = "allfavourites"
	ActionChannelFavourites = "channelfavourites"
	ActionConfigureChannel  = "configurechannel"
	ActionSetEncryptionPin  = "setencryptionpin"
	ActionResetVault        = "resetvault"
	ActionSetInputStream    = "setinputstream"
)

const (
	// RandomLiveMin and RandomLiveMax bound the nonce appended to live
	// playback URLs so the host does not serve a cached stream.
	RandomLiveMin = 10000
	RandomLiveMax = 99999

	// DefaultConfigFileName is looked up in the --config directory.
	DefaultConfigFileName = "mediaurl.yaml"

	// DefaultAddonPath is used when neither config, environment nor flags
	// provide one.
	DefaultAddonPath = "plugin://plugin.video.retrospect/"

	// DefaultPurgeAge is the age after which pickle stores are removed.
	DefaultPurgeAge = 30 * 24 * time.Hour

	// MaxTracePreviewLength caps how much of a pickle is echoed to trace logs.
	MaxTracePreviewLength = 256
)
