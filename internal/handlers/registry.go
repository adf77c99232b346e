package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	DashboardHandler    *DashboardHandler
	VerificationHandler *VerificationHandler
	EarningsHandler     *EarningsHandler
	SupportHandler      *SupportHandler
	SettingsHandler     *SettingsHandler
}
