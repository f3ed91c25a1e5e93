package constants

const (
	AppName           = "streaks"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/streaks/streaks.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. The habit collection and completion ledger are each stored
	// as a single JSON array blob under their key.
	HabitsKey      = "userHabits"
	CompletionsKey = "habitCompletions"
	ProfileKey     = "userProfile"
	SessionKey     = "session"

	// Streak lookback bounds per frequency. These cap the backward walk so the
	// computation always terminates on arbitrary ledger data.
	MaxDailyLookback   = 365
	MaxWeeklyLookback  = 52
	MaxMonthlyLookback = 12

	// DefaultIcon is used when a habit is created without an explicit icon.
	DefaultIcon = "checkbox-outline"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "streaks-"

	// Keyring entry under which the account password is stored.
	KeyringPasswordUser = "account-password"

	MinPasswordLength = 6
)
