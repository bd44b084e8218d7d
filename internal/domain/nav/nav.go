// Package nav models browser navigation as an explicit finite automaton.
// Handlers consult the transition table instead of dispatching on raw
// page strings, so illegal page/action combinations cannot be reached.
package nav

// Page identifies a screen in the job board UI.
type Page string

const (
	PageLogin    Page = "login"
	PageRegister Page = "register"
	PageListings Page = "list_jobs"
	PageAddJob   Page = "add_job"
	PageApply    Page = "apply_for_job"
)

// Valid reports whether the page is one of the known screens.
func (p Page) Valid() bool {
	switch p {
	case PageLogin, PageRegister, PageListings, PageAddJob, PageApply:
		return true
	default:
		return false
	}
}

// Path returns the URL path that renders the page. The apply page is
// parameterized by listing id and returns its route pattern.
func (p Page) Path() string {
	switch p {
	case PageLogin:
		return "/login"
	case PageRegister:
		return "/register"
	case PageListings:
		return "/listings"
	case PageAddJob:
		return "/listings/new"
	case PageApply:
		return "/listings/{id}/apply"
	default:
		return "/login"
	}
}

// Action is a user interaction that can move between pages.
type Action string

const (
	ActionLoginSuccess Action = "login_success"
	ActionLoginFailure Action = "login_failure"
	ActionRegister     Action = "register"
	ActionLogout       Action = "logout"
	ActionAddJob       Action = "add_job"
	ActionApply        Action = "apply"
	ActionBack         Action = "back"
)

// transition keys the table on the current page plus the action taken.
type transition struct {
	from   Page
	action Action
}

// requiresLogin lists actions only available to authenticated sessions.
var requiresLogin = map[Action]bool{
	ActionAddJob: true,
	ActionApply:  true,
}

var transitions = map[transition]Page{
	{PageLogin, ActionLoginSuccess}:    PageListings,
	{PageLogin, ActionLoginFailure}:    PageLogin,
	{PageLogin, ActionRegister}:        PageRegister,
	{PageRegister, ActionLoginSuccess}: PageListings,
	{PageRegister, ActionBack}:         PageLogin,
	{PageListings, ActionAddJob}:       PageAddJob,
	{PageListings, ActionApply}:        PageApply,
	{PageListings, ActionLogout}:       PageLogin,
	{PageAddJob, ActionBack}:           PageListings,
	{PageAddJob, ActionLogout}:         PageLogin,
	{PageApply, ActionBack}:            PageListings,
	{PageApply, ActionLogout}:          PageLogin,
}

// Next returns the page reached by taking action from current. Undefined
// combinations stay on the current page; actions that require a login fall
// back to the login page for anonymous sessions.
func Next(current Page, action Action, loggedIn bool) Page {
	if requiresLogin[action] && !loggedIn {
		return PageLogin
	}
	if next, ok := transitions[transition{current, action}]; ok {
		return next
	}
	return current
}

// Initial is the page shown on first contact.
func Initial() Page { return PageLogin }
