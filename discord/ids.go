package discord

// These are the ID types individual resources use: distinct names for
// Snowflake so the field types document what resource a given ID refers
// to. They all share Snowflake's method set.
type (
	GuildID        = Snowflake
	ChannelID      = Snowflake
	UserID         = Snowflake
	RoleID         = Snowflake
	MessageID      = Snowflake
	WebhookID      = Snowflake
	EmojiID        = Snowflake
	AppID          = Snowflake
	ApplicationID  = Snowflake
	CommandID      = Snowflake
	AttachmentID   = Snowflake
	CategoryID     = Snowflake
	IntegrationID  = Snowflake
	InteractionID  = Snowflake
	StageID        = Snowflake
	StickerID      = Snowflake
	StickerPackID  = Snowflake
	EventID        = Snowflake
	PackID         = Snowflake
	TargetID       = Snowflake
	TargetMessageID = Snowflake
	TargetUserID   = Snowflake
	SenderID       = Snowflake
	CreatorID      = Snowflake
	OwnerID        = Snowflake
	DMOwnerID      = Snowflake
	InviterID      = Snowflake
	PartyID        = Snowflake
	CoverID        = Snowflake
	EntityID       = Snowflake
	SyncID         = Snowflake
	LastMessageID  = Snowflake
	ParentID       = Snowflake
	SystemChannelID         = Snowflake
	RulesChannelID          = Snowflake
	PublicUpdatesChannelID  = Snowflake
	WidgetChannelID         = Snowflake
	AFKChannelID            = Snowflake
	AfkChannelID            = Snowflake
)

// NullSnowflake is the zero Snowflake, used to represent an absent ID.
const NullSnowflake Snowflake = 0

// NullChannelID is the zero ChannelID.
const NullChannelID ChannelID = 0

// NullGuildID is the zero GuildID.
const NullGuildID GuildID = 0

// IsValid reports whether the Snowflake is non-zero. It's an alias for
// Valid kept for call sites written against the ID-suffixed accessor name.
func (s Snowflake) IsValid() bool {
	return s.Valid()
}
