package menu

// GameCategoryID is the category conventionally focused at start-up and
// extended with the game library.
const GameCategoryID = "game"

// DefaultCategories returns the built-in catalog. Labels are gettext keys;
// untranslated keys render as-is.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:    "users",
			Label: "Users",
			Icon:  "users",
			Items: []Item{
				{ID: "poweroff", Label: "Turn Off System", Icon: "poweroff"},
				{ID: "user-create", Label: "Create New User", Icon: "user-create"},
				{ID: "user1", Label: "Player 1", Icon: "user-login"},
			},
		},
		{
			ID:    "settings",
			Label: "Settings",
			Icon:  "settings",
			Items: []Item{
				{ID: "update", Label: "System Update", Icon: "update"},
				{ID: "game-settings", Label: "Game Settings", Icon: "game-settings"},
				{ID: "video-settings", Label: "Video Settings", Icon: "video-settings"},
				{ID: "music-settings", Label: "Music Settings", Icon: "music-settings"},
				{ID: "chat-settings", Label: "Chat Settings", Icon: "chat-settings"},
				{ID: "system-settings", Label: "System Settings", Icon: "system-settings"},
				{ID: "theme-settings", Label: "Theme Settings", Icon: "theme-settings"},
				{ID: "accessory-settings", Label: "Accessory Settings", Icon: "accessory-settings"},
				{ID: "display-settings", Label: "Display Settings", Icon: "display-settings"},
				{ID: "sound-settings", Label: "Sound Settings", Icon: "sound-settings"},
				{ID: "security-settings", Label: "Security Settings", Icon: "security-settings"},
				{ID: "remote-settings", Label: "Remote Play Settings", Icon: "remote-settings"},
				{ID: "network-settings", Label: "Network Settings", Icon: "network-settings"},
			},
		},
		{
			ID:    "photo",
			Label: "Photo",
			Icon:  "photo",
			Items: []Item{
				{ID: "photo-gallery", Label: "Photo Gallery", Icon: "gallery"},
			},
		},
		{
			ID:    "music",
			Label: "Music",
			Icon:  "music",
			Items: []Item{
				{ID: "music-hdd", Label: "All Music", Icon: "plain-folder"},
			},
		},
		{
			ID:    "video",
			Label: "Video",
			Icon:  "video",
			Items: []Item{
				{ID: "video-hdd", Label: "All Video", Icon: "video-folder"},
			},
		},
		{
			ID:    "tv",
			Label: "TV/Video Services",
			Icon:  "tv",
			Items: []Item{
				{ID: "netflix", Label: "Netflix", Icon: "tv"},
				{ID: "youtube", Label: "YouTube", Icon: "tv"},
			},
		},
		{
			ID:    GameCategoryID,
			Label: "Game",
			Icon:  "game",
			Items: []Item{
				{ID: "game-data", Label: "Game Data Utility", Icon: "game-data"},
				{ID: "mc-utility", Label: "Memory Card Utility (PS/PS2)", Icon: "mc-utility"},
				{ID: "sd-utility", Label: "Saved Data Utility (PS3)", Icon: "sd-utility"},
				{ID: "trophies", Label: "Trophy Collection", Icon: "trophies"},
			},
			Dynamic: true,
		},
		{
			ID:    "network",
			Label: "Network",
			Icon:  "network",
			Items: []Item{
				{ID: "manuals", Label: "Online Instruction Manuals", Icon: "manuals"},
				{ID: "remote-play", Label: "Remote Play", Icon: "remote-play"},
				{ID: "browser", Label: "Internet Browser", Icon: "browser"},
				{ID: "search", Label: "Internet Search", Icon: "search"},
				{ID: "download-mgmt", Label: "Download Management", Icon: "download-mgmt"},
			},
		},
		{
			ID:    "psn",
			Label: "PlayStation Network",
			Icon:  "psn",
			Items: []Item{
				{ID: "store", Label: "PlayStation Store", Icon: "store"},
			},
		},
		{
			ID:    "friends",
			Label: "Friends",
			Icon:  "friends",
			Items: []Item{
				{ID: "add-friend", Label: "Add a Friend", Icon: "add-friend"},
				{ID: "players-met", Label: "Players Met", Icon: "players-met"},
				{ID: "message-box", Label: "Message Box", Icon: "message-box"},
			},
		},
	}
}
