package session

// LoginRoute is where unauthenticated navigation gets redirected.
const LoginRoute = "/login"

// Guard protects screens that require an authenticated session.
type Guard struct {
	sessions *Store
	redirect func(route string)
}

// NewGuard creates a route guard. redirect is invoked with LoginRoute when
// entry is denied; it may be nil.
func NewGuard(sessions *Store, redirect func(route string)) *Guard {
	return &Guard{sessions: sessions, redirect: redirect}
}

// CanActivate reports whether the route may be entered. A missing token
// denies entry and redirects to the login screen.
func (g *Guard) CanActivate(route string) bool {
	if g.sessions.IsAuthenticated() {
		return true
	}
	if g.redirect != nil {
		g.redirect(LoginRoute)
	}
	return false
}
